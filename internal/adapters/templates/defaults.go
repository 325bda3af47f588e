// Package templates provides the built-in SMS message templates.
package templates

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"pianostudio/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type file struct {
	Templates []domain.DefaultTemplate `yaml:"templates"`
}

// Source is a domain.DefaultTemplateSource backed by a parsed YAML document.
type Source struct {
	templates []domain.DefaultTemplate
	byCode    map[string]domain.DefaultTemplate
}

// Parse reads a template document. Codes must be unique and non-empty.
func Parse(raw []byte) (*Source, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}
	s := &Source{byCode: make(map[string]domain.DefaultTemplate, len(f.Templates))}
	for _, t := range f.Templates {
		if t.Code == "" {
			return nil, fmt.Errorf("parse default templates: template without code")
		}
		if _, dup := s.byCode[t.Code]; dup {
			return nil, fmt.Errorf("parse default templates: duplicate code %q", t.Code)
		}
		s.byCode[t.Code] = t
		s.templates = append(s.templates, t)
	}
	return s, nil
}

// Embedded returns the templates compiled into the binary.
func Embedded() (*Source, error) {
	return Parse(defaultsYAML)
}

// Defaults returns a copy of every template in document order.
func (s *Source) Defaults() []domain.DefaultTemplate {
	out := make([]domain.DefaultTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *Source) Lookup(code string) (domain.DefaultTemplate, bool) {
	t, ok := s.byCode[code]
	return t, ok
}
