// Package extract defines the prescription extraction boundary. The
// LLM-backed pipeline lives behind the Extractor interface as an external
// collaborator; this package ships a deterministic heuristic fallback that
// understands common prescription shorthand and works offline.
package extract

import (
	"context"
)

// Input is the raw material for one extraction: free text, a base64 image,
// or a voice transcription. At least one field must be set.
type Input struct {
	Text               string `json:"text,omitempty"`
	ImageBase64        string `json:"image_base64,omitempty"`
	VoiceTranscription string `json:"voice_transcription,omitempty"`
}

// Empty reports whether the input carries nothing to extract from.
func (in Input) Empty() bool {
	return in.Text == "" && in.ImageBase64 == "" && in.VoiceTranscription == ""
}

// Medication is one loosely-typed extracted medication. Color is a free-form
// suggestion (name or hex) and must pass color.Sanitize before it reaches
// the recolor engine.
type Medication struct {
	MedicineName       string   `json:"medicine_name"`
	DisplayName        string   `json:"display_name"`
	Form               string   `json:"form"`
	Color              string   `json:"color"`
	Dosage             string   `json:"dosage"`
	Frequency          int      `json:"frequency"`
	Times              []string `json:"times"`
	CourseDurationDays int      `json:"course_duration_days"`
	StartDate          string   `json:"start_date"`
}

// Extraction is the structured result of processing one prescription.
type Extraction struct {
	Medications     []Medication `json:"medications"`
	RawText         string       `json:"raw_text"`
	ProcessingNotes string       `json:"processing_notes"`
}

// Extractor turns raw prescription input into structured medications.
type Extractor interface {
	Extract(ctx context.Context, in Input) (*Extraction, error)
}
