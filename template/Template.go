// Package template implements resolution of checkpoint path templates.
// A template is a file path containing named placeholders such as
// {epoch:02d}, {step:03d} or {val_loss:.2f}, which are substituted with
// values from the current save event to produce a concrete path.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholder matches a single {name} or {name:format} span within a
// template. The format portion is a printf-like numeric format without
// the leading %, e.g. 02d or .2f.
var placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?::([^{}]+))?\}`)

// MissingValueError indicates that a template references a placeholder
// name for which no value was supplied. This is a configuration
// mistake: the template names a metric that the training loop never
// logs, or a step placeholder is used with epoch-granularity saving.
type MissingValueError struct {
	Template string
	Name     string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for placeholder %q in template %q",
		e.Name, e.Template)
}

// Resolve substitutes the placeholders in tmpl with values for the
// current save event. The epoch and step arguments are 0-indexed
// counters and are substituted 1-indexed, matching the convention that
// saved artifact names count from 1. When hasStep is false the event
// carries no step index (epoch-granularity save) and step placeholders
// resolve only if the metrics map carries a value under that name.
// All other placeholder names resolve from the metrics map.
//
// Resolve returns a *MissingValueError if any placeholder has no value.
func Resolve(tmpl string, epoch, step int, hasStep bool,
	metrics map[string]float64) (string, error) {

	var missing *MissingValueError

	resolved := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		groups := placeholder.FindStringSubmatch(m)
		name, format := groups[1], groups[2]

		if value, ok := intValue(name, epoch, step, hasStep); ok {
			return formatInt(value, format)
		}
		if value, ok := metrics[name]; ok {
			return formatFloat(value, format)
		}

		if missing == nil {
			missing = &MissingValueError{Template: tmpl, Name: name}
		}
		return m
	})

	if missing != nil {
		return "", missing
	}
	return resolved, nil
}

// intValue returns the integer substitution value for the placeholder
// name, if the name denotes one of the event's counters.
func intValue(name string, epoch, step int, hasStep bool) (int, bool) {
	switch name {
	case "epoch":
		return epoch + 1, true
	case "step", "batch":
		if hasStep {
			return step + 1, true
		}
	}
	return 0, false
}

// formatInt renders an integer placeholder value using the template's
// format directive, defaulting to plain decimal.
func formatInt(value int, format string) string {
	if format == "" {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("%"+format, value)
}

// formatFloat renders a metric placeholder value using the template's
// format directive. Integer directives are honored by truncation so
// that templates like {lr:03d} do not silently misformat.
func formatFloat(value float64, format string) string {
	if format == "" {
		return fmt.Sprintf("%v", value)
	}
	if strings.HasSuffix(format, "d") {
		return fmt.Sprintf("%"+format, int(value))
	}
	return fmt.Sprintf("%"+format, value)
}

// Pattern converts the base-name portion of a template into an
// anchored regular expression that matches any concrete path the
// template could have produced: placeholder spans match any text,
// literal spans match exactly.
func Pattern(base string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")

	last := 0
	for _, span := range placeholder.FindAllStringIndex(base, -1) {
		b.WriteString(regexp.QuoteMeta(base[last:span[0]]))
		b.WriteString(".*")
		last = span[1]
	}
	b.WriteString(regexp.QuoteMeta(base[last:]))
	b.WriteString("$")

	return regexp.MustCompile(b.String())
}
