// Package export renders generated scales into consumable formats: CSS
// custom properties, a Tailwind colour config, and JSON.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/aguscruiz/color-palette-generator/internal/colour"
	"github.com/aguscruiz/color-palette-generator/internal/config"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Format identifies an output format.
type Format string

const (
	// FormatTable renders an ANSI table to the terminal.
	FormatTable Format = "table"

	// FormatCSS renders CSS custom properties.
	FormatCSS Format = "css"

	// FormatTailwind renders a tailwind.config.js colour block.
	FormatTailwind Format = "tailwind"

	// FormatJSON renders the full scale data as JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns the supported output formats.
func ValidFormats() []Format {
	return []Format{FormatTable, FormatCSS, FormatTailwind, FormatJSON}
}

// IsValidFormat checks whether the given format is supported.
func IsValidFormat(f Format) bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Filename returns the conventional file name for a format, or "" for
// formats that only target the terminal.
func Filename(f Format) string {
	switch f {
	case FormatCSS:
		return "palette.css"
	case FormatTailwind:
		return "tailwind.config.js"
	case FormatJSON:
		return "palette.json"
	default:
		return ""
	}
}

// ScaleResult pairs a family with its generated steps.
type ScaleResult struct {
	Family config.Family `json:"family"`
	Steps  []colour.Step `json:"steps"`
}

// document is the top-level JSON output shape.
type document struct {
	Reference string        `json:"reference"`
	Chroma    float64       `json:"chroma"`
	Scales    []ScaleResult `json:"scales"`
}

// JSON renders the scales as indented JSON.
func JSON(cfg config.Config, results []ScaleResult) ([]byte, error) {
	doc := document{
		Reference: cfg.Reference,
		Chroma:    cfg.Chroma,
		Scales:    results,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scales: %w", err)
	}
	return data, nil
}

// CSS renders the scales as CSS custom properties.
func CSS(results []ScaleResult) ([]byte, error) {
	return render("variables.css.tmpl", results)
}

// Tailwind renders the scales as a tailwind.config.js colour block.
func Tailwind(results []ScaleResult) ([]byte, error) {
	return render("tailwind.config.js.tmpl", results)
}

// render executes an embedded template against the scale results.
func render(name string, results []ScaleResult) ([]byte, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Scales []ScaleResult }{Scales: results}); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// slug turns a family name into an identifier safe for CSS variables and
// JS keys.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "colour"
	}
	return b.String()
}

// templateFuncs returns template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"slug": slug,
	}
}
