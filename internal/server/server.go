// Package server exposes the recoloring engine and medication store over a
// JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pharmakit/icontint/internal/batch"
	"github.com/pharmakit/icontint/internal/color"
	"github.com/pharmakit/icontint/internal/config"
	"github.com/pharmakit/icontint/internal/extract"
	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/logger"
	"github.com/pharmakit/icontint/internal/manifest"
	"github.com/pharmakit/icontint/internal/raster"
	"github.com/pharmakit/icontint/internal/recolor"
	"github.com/pharmakit/icontint/internal/store"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// Server wires the icon store, manifest, medication store, and extractor
// behind the HTTP surface. Meds may be nil when no database is configured;
// the medication routes then answer 503.
type Server struct {
	Icons     *icons.Store
	Manifest  *manifest.Manifest
	Meds      *store.Store
	Extractor extract.Extractor
	Log       *logger.Logger
	Cfg       config.Config
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/", s.handleHealth)
	mux.HandleFunc("GET /api/icons", s.handleListIcons)
	mux.HandleFunc("POST /api/icons/recolor", s.handleRecolor)
	mux.HandleFunc("POST /api/icons/batch", s.handleBatch)
	mux.HandleFunc("POST /api/process-prescription", s.handleProcessPrescription)
	mux.HandleFunc("GET /api/medications", s.handleListMedications)
	mux.HandleFunc("POST /api/medications", s.handleCreateMedication)
	mux.HandleFunc("GET /api/medications/{id}", s.handleGetMedication)
	mux.HandleFunc("DELETE /api/medications/{id}", s.handleDeleteMedication)

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		if s.Log != nil {
			s.Log.WithFields(map[string]any{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Debug("request handled")
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"icons":            len(s.Icons.Keys()),
		"raster_available": raster.Available(),
		"store_available":  s.Meds != nil,
	})
}

type iconInfo struct {
	Key   string   `json:"key"`
	Roles []string `json:"roles"`
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	out := make([]iconInfo, 0, len(s.Icons.Keys()))
	for _, key := range s.Icons.Keys() {
		info := iconInfo{Key: key, Roles: []string{}}
		if icon, ok := s.Manifest.Icon(key); ok {
			for _, role := range manifest.RoleOrder {
				if _, has := icon.Slot(role); has {
					info.Roles = append(info.Roles, role)
				}
			}
		}
		out = append(out, info)
	}

	writeJSON(w, http.StatusOK, map[string]any{"icons": out})
}

type recolorRequest struct {
	Icon   string             `json:"icon_key"`
	Colors recolor.ColorInput `json:"colors"`
}

type recolorResponse struct {
	Icon string `json:"icon_key"`
	SVG  string `json:"svg"`
}

func (s *Server) handleRecolor(w http.ResponseWriter, r *http.Request) {
	var req recolorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := sanitizeInput(req.Colors)
	if err != nil {
		s.writeError(w, err)
		return
	}

	svg, err := recolor.Recolor(req.Icon, in, s.Icons, s.Manifest)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recolorResponse{Icon: icons.CanonicalKey(req.Icon), SVG: svg})
}

type batchRequest struct {
	Requests []batch.Request `json:"requests"`
	Parallel *bool           `json:"parallel,omitempty"`
}

type batchResult struct {
	Icon  string `json:"icon_key"`
	SVG   string `json:"svg,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	for i := range req.Requests {
		in, err := sanitizeInput(req.Requests[i].Colors)
		if err != nil {
			s.writeError(w, err)
			return
		}
		req.Requests[i].Colors = in
	}

	parallel := true
	if req.Parallel != nil {
		parallel = *req.Parallel
	}

	results := batch.Process(r.Context(), req.Requests, batch.Options{
		Store:      s.Icons,
		Manifest:   s.Manifest,
		Parallel:   parallel,
		MaxWorkers: s.Cfg.Parallel,
		Logger:     s.Log,
	})

	out := make([]batchResult, 0, len(results))
	for _, res := range results {
		br := batchResult{Icon: res.Icon, SVG: res.SVG}
		if res.Err != nil {
			br.Error = res.Err.Error()
		}
		out = append(out, br)
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

type prescriptionMedication struct {
	extract.Medication

	IconKey string `json:"icon_key"`
	SVG     string `json:"svg"`
	ID      string `json:"id,omitempty"`
}

func (s *Server) handleProcessPrescription(w http.ResponseWriter, r *http.Request) {
	var in extract.Input
	if !decodeJSON(w, r, &in) {
		return
	}

	if s.Extractor == nil {
		s.writeError(w, tinterrors.NewCapabilityError("extraction", "no extractor configured"))
		return
	}

	extraction, err := s.Extractor.Extract(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]prescriptionMedication, 0, len(extraction.Medications))
	for _, med := range extraction.Medications {
		enriched, err := s.enrichMedication(r.Context(), med)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out = append(out, enriched)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"medications":      out,
		"raw_text":         extraction.RawText,
		"processing_notes": extraction.ProcessingNotes,
	})
}

// enrichMedication resolves the icon, recolors it with the extracted color
// suggestion, and persists the record when a store is configured. Colors the
// sanitizer rejects fall back to the manifest defaults rather than failing
// the whole prescription.
func (s *Server) enrichMedication(ctx context.Context, med extract.Medication) (prescriptionMedication, error) {
	iconKey := icons.ForForm(med.Form)

	background, err := color.Sanitize(med.Color)
	if err != nil {
		background = ""
	}

	svg, err := recolor.Recolor(iconKey, recolor.ColorInput{Background: background}, s.Icons, s.Manifest)
	if err != nil {
		return prescriptionMedication{}, err
	}

	result := prescriptionMedication{
		Medication: med,
		IconKey:    iconKey,
		SVG:        svg,
	}

	if s.Meds != nil {
		rec := &store.Medication{
			MedicineName:       med.MedicineName,
			DisplayName:        med.DisplayName,
			Form:               med.Form,
			IconKey:            iconKey,
			MedicationColor:    med.Color,
			BackgroundColor:    background,
			Dosage:             med.Dosage,
			Frequency:          med.Frequency,
			Times:              med.Times,
			CourseDurationDays: med.CourseDurationDays,
			StartDate:          med.StartDate,
		}
		if err := s.Meds.Insert(ctx, rec); err != nil {
			return prescriptionMedication{}, err
		}
		result.ID = rec.ID
	}

	return result, nil
}

func (s *Server) handleListMedications(w http.ResponseWriter, r *http.Request) {
	if s.Meds == nil {
		s.writeError(w, tinterrors.NewCapabilityError("store", "no database configured"))
		return
	}

	meds, err := s.Meds.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if meds == nil {
		meds = []store.Medication{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"medications": meds})
}

func (s *Server) handleCreateMedication(w http.ResponseWriter, r *http.Request) {
	if s.Meds == nil {
		s.writeError(w, tinterrors.NewCapabilityError("store", "no database configured"))
		return
	}

	var med store.Medication
	if !decodeJSON(w, r, &med) {
		return
	}

	if med.MedicineName == "" {
		s.writeError(w, tinterrors.NewValidationError("medicine_name", "must not be empty", nil))
		return
	}
	if med.IconKey == "" {
		med.IconKey = icons.ForForm(med.Form)
	}
	if med.BackgroundColor != "" {
		sanitized, err := color.Sanitize(med.BackgroundColor)
		if err != nil {
			s.writeError(w, err)
			return
		}
		med.BackgroundColor = sanitized
	}

	if err := s.Meds.Insert(r.Context(), &med); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, med)
}

func (s *Server) handleGetMedication(w http.ResponseWriter, r *http.Request) {
	if s.Meds == nil {
		s.writeError(w, tinterrors.NewCapabilityError("store", "no database configured"))
		return
	}

	med, err := s.Meds.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

func (s *Server) handleDeleteMedication(w http.ResponseWriter, r *http.Request) {
	if s.Meds == nil {
		s.writeError(w, tinterrors.NewCapabilityError("store", "no database configured"))
		return
	}

	if err := s.Meds.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// sanitizeInput resolves each color suggestion (name or hex) to a normalized
// hex value, rejecting values that match neither.
func sanitizeInput(in recolor.ColorInput) (recolor.ColorInput, error) {
	fields := []*string{&in.Background, &in.Ascent1, &in.Ascent2, &in.Cap}
	for _, f := range fields {
		sanitized, err := color.Sanitize(*f)
		if err != nil {
			return recolor.ColorInput{}, err
		}
		*f = sanitized
	}
	return in, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the typed error taxonomy onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		notFound   *tinterrors.NotFoundError
		invalid    *tinterrors.InvalidColorError
		validation *tinterrors.ValidationError
		capability *tinterrors.CapabilityError
	)
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &capability):
		status = http.StatusServiceUnavailable
	}

	if s.Log != nil && status == http.StatusInternalServerError {
		s.Log.Error(err, "request failed")
	}

	writeJSON(w, status, map[string]any{"error": err.Error()})
}
