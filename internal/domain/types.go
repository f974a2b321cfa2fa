// Package domain contains the core business entities and the deterministic
// report-composition logic for pediatric ultrasound reporting: resident
// registration number (RRN) parsing, pediatric age labelling, impression
// composition, and plain-text document rendering.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sex represents the patient sex as encoded by the RRN century/sex digit.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// IsValid validates the sex code.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

// String returns the raw single-letter code.
func (s Sex) String() string {
	return string(s)
}

// DisplayName returns the spelled-out form used in rendered documents.
func (s Sex) DisplayName() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return ""
	}
}

// Date is a calendar date without time-of-day or zone. Birth dates, exam
// dates, and the reference "today" are all plain calendar dates; age
// computation works on calendar fields, not elapsed time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its calendar fields.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in ISO "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date in ISO "2006-01-02" form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// MarshalJSON encodes the date as an ISO "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO "2006-01-02" string. An empty string decodes
// to the zero date so snapshots with an unset exam date round-trip.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PatientInfo carries the demographic block of a report. Age is a display
// string, not a structured duration: once derived from the RRN it is plain
// mutable state and is only recomputed when the RRN changes again.
type PatientInfo struct {
	Name      string `json:"name"`
	PatientID string `json:"patient_id"`
	RRN       string `json:"rrn,omitempty"`
	Age       string `json:"age"`
	Sex       Sex    `json:"sex"`
	ExamDate  Date   `json:"exam_date"`
}

// ExamTemplate is the static description of one ultrasound examination type:
// seed normal-findings text, the controlled vocabulary of abnormal findings,
// and the phrase-per-finding impression map. Templates are immutable and
// owned by the catalog.
type ExamTemplate struct {
	Code                string            `json:"code"`
	DisplayName         string            `json:"display_name"`
	NormalFindings      string            `json:"normal_findings"`
	AbnormalVocabulary  []string          `json:"abnormal_vocabulary"`
	NormalImpression    string            `json:"normal_impression"`
	AbnormalImpressions map[string]string `json:"abnormal_impressions"`
}

// Validate ensures the template data is internally consistent. The
// impression map need not cover the whole vocabulary (composition falls back
// to a generic phrase), but every mapped key must be a vocabulary entry.
func (t *ExamTemplate) Validate() error {
	if t.Code == "" {
		return fmt.Errorf("exam template validation: code is required")
	}
	if t.DisplayName == "" {
		return fmt.Errorf("exam template validation: display name is required")
	}
	if t.NormalImpression == "" {
		return fmt.Errorf("exam template validation: normal impression is required")
	}

	seen := make(map[string]struct{}, len(t.AbnormalVocabulary))
	for _, finding := range t.AbnormalVocabulary {
		if finding == "" {
			return fmt.Errorf("exam template validation: empty vocabulary entry in %q", t.Code)
		}
		if _, dup := seen[finding]; dup {
			return fmt.Errorf("exam template validation: duplicate vocabulary entry %q in %q", finding, t.Code)
		}
		seen[finding] = struct{}{}
	}

	for mapped := range t.AbnormalImpressions {
		if _, ok := seen[mapped]; !ok {
			return fmt.Errorf("exam template validation: impression phrase for %q not in %q vocabulary", mapped, t.Code)
		}
	}

	return nil
}

// HasFinding reports whether the finding belongs to the template vocabulary.
func (t *ExamTemplate) HasFinding(finding string) bool {
	for _, f := range t.AbnormalVocabulary {
		if f == finding {
			return true
		}
	}
	return false
}

// ReportDraft is the in-memory, editable working state of one report before
// it is saved. SelectedAbnormal preserves selection order, which drives both
// the bullet list and the impression phrase order.
type ReportDraft struct {
	Patient            PatientInfo `json:"patient"`
	ExamCode           string      `json:"exam_code"`
	NormalFindings     string      `json:"normal_findings"`
	SelectedAbnormal   []string    `json:"selected_abnormal"`
	AdditionalFindings string      `json:"additional_findings"`
	Impression         string      `json:"impression"`
}

// SavedReport is the persisted, immutable-at-rest snapshot of a draft plus a
// stable id and the save timestamp. Draft fields are embedded so snapshots
// serialize flat.
type SavedReport struct {
	ID string `json:"id"`
	ReportDraft
	SavedAt time.Time `json:"saved_at"`
}
