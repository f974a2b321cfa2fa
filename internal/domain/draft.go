package domain

import "fmt"

// ApplyTemplate switches the draft to a new examination type: the normal
// findings are re-seeded from the template, the abnormal selection is
// cleared, and the impression is regenerated.
func (d *ReportDraft) ApplyTemplate(t *ExamTemplate) {
	d.ExamCode = t.Code
	d.NormalFindings = t.NormalFindings
	d.SelectedAbnormal = nil
	d.refreshImpression(t)
}

// SetSelectedFindings replaces the abnormal selection, preserving the order
// given. Every finding must belong to the template vocabulary. The
// impression is regenerated unconditionally: a manual edit to the impression
// text is overwritten whenever the selection changes. Tracking a dirty flag
// instead would be friendlier, but recompute-always is the established
// behavior clinicians rely on for consistency.
func (d *ReportDraft) SetSelectedFindings(t *ExamTemplate, findings []string) error {
	for _, finding := range findings {
		if !t.HasFinding(finding) {
			return fmt.Errorf("selecting finding %q: %w", finding, ErrUnknownFinding)
		}
	}
	d.SelectedAbnormal = findings
	d.refreshImpression(t)
	return nil
}

// ToggleFinding adds the finding to the selection (at the end, preserving
// selection order) or removes it if already selected, then regenerates the
// impression.
func (d *ReportDraft) ToggleFinding(t *ExamTemplate, finding string) error {
	if !t.HasFinding(finding) {
		return fmt.Errorf("toggling finding %q: %w", finding, ErrUnknownFinding)
	}

	for i, selected := range d.SelectedAbnormal {
		if selected == finding {
			d.SelectedAbnormal = append(d.SelectedAbnormal[:i], d.SelectedAbnormal[i+1:]...)
			d.refreshImpression(t)
			return nil
		}
	}

	d.SelectedAbnormal = append(d.SelectedAbnormal, finding)
	d.refreshImpression(t)
	return nil
}

func (d *ReportDraft) refreshImpression(t *ExamTemplate) {
	d.Impression = ComposeImpression(t, d.SelectedAbnormal)
}

// Validate checks the draft against its template: the selection must be a
// subset of the template vocabulary.
func (d *ReportDraft) Validate(t *ExamTemplate) error {
	for _, finding := range d.SelectedAbnormal {
		if !t.HasFinding(finding) {
			return fmt.Errorf("draft validation: finding %q: %w", finding, ErrUnknownFinding)
		}
	}
	return nil
}

// CheckSavePreconditions reports whether the draft may be saved: a patient
// name and a selected examination type are required.
func (d *ReportDraft) CheckSavePreconditions() error {
	if d.Patient.Name == "" {
		return fmt.Errorf("saving report: %w", ErrMissingPatientName)
	}
	if d.ExamCode == "" {
		return fmt.Errorf("saving report: %w", ErrMissingExamType)
	}
	return nil
}
