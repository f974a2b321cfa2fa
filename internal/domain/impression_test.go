package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func impressionTestTemplate() *ExamTemplate {
	return &ExamTemplate{
		Code:               "Test",
		DisplayName:        "Test Ultrasound",
		NormalFindings:     "FINDINGS:\nUnremarkable.",
		AbnormalVocabulary: []string{"Cyst", "Mass", "Fluid collection"},
		NormalImpression:   "Normal study.",
		AbnormalImpressions: map[string]string{
			"Cyst": "Simple cyst identified. Follow-up as indicated.",
			"Mass": "Mass lesion identified. Further evaluation recommended.",
		},
	}
}

func TestComposeImpression_EmptySelection(t *testing.T) {
	tmpl := impressionTestTemplate()

	assert.Equal(t, "Normal study.", ComposeImpression(tmpl, nil))
	assert.Equal(t, "Normal study.", ComposeImpression(tmpl, []string{}))
}

func TestComposeImpression_MappedPhrases(t *testing.T) {
	tmpl := impressionTestTemplate()

	got := ComposeImpression(tmpl, []string{"Cyst", "Mass"})
	want := "Simple cyst identified. Follow-up as indicated.\n\n" +
		"Mass lesion identified. Further evaluation recommended."
	assert.Equal(t, want, got)
}

func TestComposeImpression_SelectionOrder(t *testing.T) {
	tmpl := impressionTestTemplate()

	got := ComposeImpression(tmpl, []string{"Mass", "Cyst"})
	want := "Mass lesion identified. Further evaluation recommended.\n\n" +
		"Simple cyst identified. Follow-up as indicated."
	assert.Equal(t, want, got)
}

func TestComposeImpression_UnmappedFallback(t *testing.T) {
	tmpl := impressionTestTemplate()

	got := ComposeImpression(tmpl, []string{"Fluid collection"})
	assert.Equal(t, "Fluid collection noted. Clinical correlation recommended.", got)
}

func TestComposeImpression_MixedMappedAndFallback(t *testing.T) {
	tmpl := impressionTestTemplate()

	got := ComposeImpression(tmpl, []string{"Fluid collection", "Cyst"})
	want := "Fluid collection noted. Clinical correlation recommended.\n\n" +
		"Simple cyst identified. Follow-up as indicated."
	assert.Equal(t, want, got)
}

func TestComposeImpression_Idempotent(t *testing.T) {
	tmpl := impressionTestTemplate()
	selected := []string{"Cyst", "Mass"}

	first := ComposeImpression(tmpl, selected)
	second := ComposeImpression(tmpl, selected)
	assert.Equal(t, first, second)
}
