package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"pianostudio/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var renderFuncs = map[string]any{
	"won": domain.FormatAmount,
}

// executor is the part of html/template and text/template the renderer needs.
type executor interface {
	ExecuteTemplate(wr io.Writer, name string, data any) error
}

// templateSet renders owner notification mails. Every mail is three files in templates/:
// <name>_subject.txt, <name>.txt and <name>.html.
type templateSet struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses the embedded mail templates once. It panics when they do not
// parse, since they ship inside the binary.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	set, err := parseTemplates(templateFS)
	if err != nil {
		panic(fmt.Sprintf("email templates: %v", err))
	}
	return set
}

func parseTemplates(fsys fs.FS) (*templateSet, error) {
	text, err := texttemplate.New("mail").Funcs(renderFuncs).ParseFS(fsys, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	html, err := htmltemplate.New("mail").Funcs(renderFuncs).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &templateSet{text: text, html: html}, nil
}

func (s *templateSet) Render(name string, data any) (subject, htmlBody, textBody string, err error) {
	if s.text.Lookup(name+".txt") == nil {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	if subject, err = execute(s.text, name+"_subject.txt", data); err != nil {
		return "", "", "", err
	}
	if textBody, err = execute(s.text, name+".txt", data); err != nil {
		return "", "", "", err
	}
	if htmlBody, err = execute(s.html, name+".html", data); err != nil {
		return "", "", "", err
	}
	// Subjects are one line; a trailing newline in the file must not reach the header.
	return strings.Join(strings.Fields(subject), " "), htmlBody, textBody, nil
}

func execute(t executor, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
