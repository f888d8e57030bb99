package extract

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pharmakit/icontint/internal/color"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// Heuristic is a rule-based extractor for common prescription shorthand:
// form prefixes (Tab/Cap/Syr/Inj), frequency abbreviations (OD, BD, TDS,
// QDS) and their spelled-out forms, "x Nd" durations, and color words. It
// never touches the network and is the default extractor in tests and
// offline runs.
type Heuristic struct {
	// Now supplies the start date; overridable in tests.
	Now func() time.Time
}

// NewHeuristic returns a Heuristic extractor using the wall clock.
func NewHeuristic() *Heuristic {
	return &Heuristic{Now: time.Now}
}

var formPrefixes = map[string]string{
	"tab":   "tablet",
	"tabs":  "tablet",
	"cap":   "capsule",
	"caps":  "capsule",
	"syr":   "syrup",
	"inj":   "injection",
	"oint":  "ointment",
	"supp":  "suppository",
	"drops": "drops",
}

var formWords = []string{
	"tablet", "capsule", "syrup", "injection", "ointment", "cream",
	"drops", "inhaler", "patch", "powder", "gel", "spray", "lotion",
	"suppository", "solution", "mouthwash", "gum", "liquid",
}

var frequencyAbbrevs = map[string]int{
	"od": 1, "qd": 1, "bd": 2, "bid": 2, "tds": 3, "tid": 3, "qds": 4, "qid": 4,
}

var frequencyPhrases = []struct {
	phrase string
	count  int
}{
	{"once daily", 1}, {"once a day", 1},
	{"twice daily", 2}, {"twice a day", 2}, {"two times daily", 2}, {"2 times daily", 2},
	{"thrice daily", 3}, {"three times daily", 3}, {"three times a day", 3}, {"3 times daily", 3}, {"3 times a day", 3},
	{"four times daily", 4}, {"four times a day", 4}, {"4 times daily", 4}, {"4 times a day", 4},
}

// scheduleByFrequency evenly distributes dose times across the waking day.
var scheduleByFrequency = map[int][]string{
	1: {"08:00"},
	2: {"08:00", "20:00"},
	3: {"08:00", "14:00", "20:00"},
	4: {"08:00", "12:00", "16:00", "20:00"},
}

var (
	durationPattern = regexp.MustCompile(`(?i)(?:x\s*)?(\d+)\s*(?:d\b|days?\b)`)
	dosagePattern   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(mg|ml|mcg|iu|g)\b`)
	namePattern     = regexp.MustCompile(`(?i)^([a-z][a-z0-9-]*(?:\s+[a-z][a-z0-9-]*)?)`)
)

// Extract parses the textual input line by line, emitting one medication
// per line that looks like a prescription entry. Image-only input is out of
// scope for the heuristic and fails with a CapabilityError so callers fall
// back to the full pipeline.
func (h *Heuristic) Extract(ctx context.Context, in Input) (*Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := in.Text
	if text == "" {
		text = in.VoiceTranscription
	}
	if text == "" {
		if in.ImageBase64 != "" {
			return nil, tinterrors.NewCapabilityError("image-extraction",
				"heuristic extractor cannot read images")
		}
		return nil, tinterrors.NewValidationError("input", "no text to extract from", nil)
	}

	var meds []Medication
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if med, ok := h.parseLine(line); ok {
			meds = append(meds, med)
		}
	}

	notes := "parsed with offline heuristics"
	if len(meds) == 0 {
		notes = "no recognizable medication entries"
	}

	return &Extraction{
		Medications:     meds,
		RawText:         text,
		ProcessingNotes: notes,
	}, nil
}

func (h *Heuristic) parseLine(line string) (Medication, bool) {
	lower := strings.ToLower(line)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '-' || r == ',' || r == '.'
	})
	if len(tokens) == 0 {
		return Medication{}, false
	}

	med := Medication{Form: "tablet", Frequency: 1, CourseDurationDays: 7}

	rest := lower
	if form, ok := formPrefixes[tokens[0]]; ok {
		med.Form = form
		rest = strings.TrimSpace(line[len(tokens[0]):])
	} else {
		for _, word := range formWords {
			if strings.Contains(lower, word) {
				med.Form = word
				break
			}
		}
	}

	if m := namePattern.FindString(strings.TrimSpace(rest)); m != "" {
		med.MedicineName = title(strings.TrimSpace(m))
	}
	if med.MedicineName == "" {
		return Medication{}, false
	}

	if m := dosagePattern.FindStringSubmatch(line); m != nil {
		med.Dosage = m[1] + m[2]
	} else if m := regexp.MustCompile(`\b(\d{2,4})\b`).FindString(line); m != "" {
		// Bare strength like "Dolo 650" means milligrams by convention.
		med.Dosage = m + "mg"
	}

	med.Frequency = detectFrequency(lower, tokens)
	if times, ok := scheduleByFrequency[med.Frequency]; ok {
		med.Times = append([]string(nil), times...)
	}

	if m := durationPattern.FindStringSubmatch(line); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days > 0 {
			med.CourseDurationDays = days
		}
	}

	med.Color = detectColor(lower)
	med.DisplayName = displayName(med.Color, med.Form)
	med.StartDate = h.Now().Format("2006-01-02")

	return med, true
}

func detectFrequency(lower string, tokens []string) int {
	for _, fp := range frequencyPhrases {
		if strings.Contains(lower, fp.phrase) {
			return fp.count
		}
	}
	for _, tok := range tokens {
		if count, ok := frequencyAbbrevs[tok]; ok {
			return count
		}
	}
	return 1
}

func detectColor(lower string) string {
	// Two-word names first so "light blue" does not resolve as "blue".
	best := ""
	for name := range color.Names {
		if strings.Contains(lower, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return "white"
	}
	return best
}

func displayName(colorName, form string) string {
	return fmt.Sprintf("%s %s", title(colorName), title(form))
}

func title(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
