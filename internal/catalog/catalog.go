// Package catalog provides the immutable lookup of examination templates.
// The catalog is static content data constructed once at process start and
// never mutated afterwards; lookups are by exam-type code and the code order
// follows the declaration order of the seed data.
package catalog

import (
	"fmt"

	"github.com/sono-report-server/internal/domain"
)

// Catalog is the read-only collection of exam templates.
type Catalog struct {
	templates map[string]*domain.ExamTemplate
	codes     []string
}

// New builds the catalog from the built-in template data, validating every
// template. The error return exists for data integrity only; the built-in
// data is covered by tests.
func New() (*Catalog, error) {
	c := &Catalog{
		templates: make(map[string]*domain.ExamTemplate, len(builtinTemplates)),
		codes:     make([]string, 0, len(builtinTemplates)),
	}

	for _, t := range builtinTemplates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("building exam catalog: %w", err)
		}
		if _, dup := c.templates[t.Code]; dup {
			return nil, fmt.Errorf("building exam catalog: duplicate code %q", t.Code)
		}
		c.templates[t.Code] = t
		c.codes = append(c.codes, t.Code)
	}

	return c, nil
}

// MustNew builds the catalog and panics on invalid built-in data. Intended
// for tests and main-path wiring where the data is known good.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the template for an exam-type code.
func (c *Catalog) Get(code string) (*domain.ExamTemplate, error) {
	t, ok := c.templates[code]
	if !ok {
		return nil, fmt.Errorf("exam template %q: %w", code, domain.ErrNotFound)
	}
	return t, nil
}

// Codes returns the exam-type codes in declaration order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.codes)
}
