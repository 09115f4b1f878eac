// Package render is the presentation layer of the calculator. It formats a
// calculation result for people (a localized text report) and for programs
// (JSON).
//
// The template functions are stateless and deterministic. Formatting
// problems never panic: NaN prints as "NaN" and unknown style names print
// nothing.
package render

import (
	"math"
	"strings"
	"text/template"

	"golang.org/x/text/message"

	"github.com/rustickingdom/talentcalc/infrastructure/i18n"
)

// ANSI styles per theme, keyed by style name.
var palettes = map[i18n.Theme]map[string]string{
	i18n.Light: {
		"title":   "\x1b[1;34m",
		"heading": "\x1b[1m",
		"score":   "\x1b[1;32m",
		"muted":   "\x1b[2m",
	},
	i18n.Dark: {
		"title":   "\x1b[1;33m",
		"heading": "\x1b[1;37m",
		"score":   "\x1b[1;93m",
		"muted":   "\x1b[90m",
	},
}

const ansiReset = "\x1b[0m"

// funcMap returns the template functions bound to one render context.
//
// Usage in report templates:
//
//	{{style "heading"}}{{t "scoreBreakdown"}}{{reset}}
//	{{t "judge"}} {{add $i 1}}: {{num $avg}}
func funcMap(rc i18n.RenderContext) template.FuncMap {
	printer := message.NewPrinter(rc.Translator.Tag())

	return template.FuncMap{
		// t looks up a display string.
		// Template usage: {{t "finalScore"}}
		"t": rc.Translator.T,

		// add performs integer addition.
		// Common use: converting 0-based to 1-based indexing.
		// Template usage: {{add $index 1}}
		"add": func(a, b int) int {
			return a + b
		},

		// num formats a score with two decimals in the locale's digits.
		// Template usage: {{num .Result.FinalScore}}
		"num": func(v float64) string {
			return formatNumber(printer, v)
		},

		// raw shows an input as entered, or a dash when it is blank.
		// Template usage: {{raw .Creativity}}
		"raw": func(v string) string {
			if strings.TrimSpace(v) == "" {
				return "-"
			}
			return v
		},

		// pct formats a fraction as a whole percentage.
		// Template usage: {{pct .Weights.Judges}}
		"pct": func(v float64) string {
			if math.IsNaN(v) {
				return "NaN"
			}
			return printer.Sprintf("%.0f%%", v*100)
		},

		// style starts an ANSI style for the context's theme.
		// Returns empty string when colour is disabled.
		// Template usage: {{style "title"}}
		"style": func(name string) string {
			if !rc.Color {
				return ""
			}
			return palettes[rc.Theme][name]
		},

		// reset ends a style started with style.
		// Template usage: {{reset}}
		"reset": func() string {
			if !rc.Color {
				return ""
			}
			return ansiReset
		},
	}
}

// formatNumber renders v with two decimals; non-finite values are spelled out.
func formatNumber(p *message.Printer, v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return p.Sprintf("%.2f", v)
}
