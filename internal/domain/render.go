package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	documentTitle = "PEDIATRIC ULTRASOUND REPORT"
	ruleWidth     = 70
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// RenderDocument renders the final plain-text report for a draft. The
// template may be nil when the exam code is not in the catalog; the raw code
// is then used as the examination name, matching the seed data's behavior.
//
// Layout: title banner, patient block, separator, the normal-findings text
// verbatim, then abnormal-findings bullets (selection order), additional
// findings, and the impression, each block emitted only when it has content.
// Rendering never fails; empty blocks are skipped.
func RenderDocument(draft *ReportDraft, t *ExamTemplate) string {
	examName := draft.ExamCode
	if t != nil {
		examName = t.DisplayName
	}

	heavyRule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", documentTitle, heavyRule)
	fmt.Fprintf(&b, "Patient Name: %s\n", draft.Patient.Name)
	fmt.Fprintf(&b, "Patient ID: %s\n", draft.Patient.PatientID)
	if draft.Patient.RRN != "" {
		fmt.Fprintf(&b, "RRN: %s\n", draft.Patient.RRN)
	}
	fmt.Fprintf(&b, "Age: %s\n", draft.Patient.Age)
	fmt.Fprintf(&b, "Gender: %s\n", draft.Patient.Sex.DisplayName())
	fmt.Fprintf(&b, "Exam Date: %s\n", draft.Patient.ExamDate)
	fmt.Fprintf(&b, "Examination: %s\n\n", examName)
	fmt.Fprintf(&b, "%s\n\n", heavyRule)

	fmt.Fprintf(&b, "%s\n\n", draft.NormalFindings)

	if len(draft.SelectedAbnormal) > 0 {
		b.WriteString("ABNORMAL FINDINGS:\n")
		for _, finding := range draft.SelectedAbnormal {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
		b.WriteString("\n")
	}

	if strings.TrimSpace(draft.AdditionalFindings) != "" {
		fmt.Fprintf(&b, "ADDITIONAL FINDINGS:\n%s\n\n", draft.AdditionalFindings)
	}

	if strings.TrimSpace(draft.Impression) != "" {
		fmt.Fprintf(&b, "IMPRESSION:\n%s\n%s\n", strings.Repeat("-", ruleWidth), draft.Impression)
	}

	return b.String()
}

// SuggestFilename derives the download filename for a draft:
// "<examDate>_<patientName>_<examName>.txt" with whitespace runs in the
// examination name collapsed to underscores. Both the patient name and the
// exam template are required; the operation is refused otherwise.
func SuggestFilename(draft *ReportDraft, t *ExamTemplate) (string, error) {
	if draft.Patient.Name == "" {
		return "", fmt.Errorf("suggesting filename: %w", ErrMissingPatientName)
	}
	if t == nil || draft.ExamCode == "" {
		return "", fmt.Errorf("suggesting filename: %w", ErrMissingExamType)
	}

	examName := whitespaceRun.ReplaceAllString(t.DisplayName, "_")
	return fmt.Sprintf("%s_%s_%s.txt", draft.Patient.ExamDate, draft.Patient.Name, examName), nil
}
