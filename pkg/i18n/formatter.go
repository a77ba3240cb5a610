package i18n

import (
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// Formatter evaluates patterns against argument sets.
type Formatter struct {
	format *LocaleFormat
}

// NewFormatter creates a Formatter rendering numbers with format.
// If format is nil, it defaults to FormatEnUS().
func NewFormatter(format *LocaleFormat) *Formatter {
	if format == nil {
		format = FormatEnUS()
	}
	return &Formatter{format: format}
}

// Format substitutes args into p and evaluates its plural selection.
//
// Formatting is lenient: an argument the pattern references but args lacks
// renders as "{{name}}" and is reported as a warning wrapping
// ErrUnresolvedArgument. Arguments the pattern does not reference are ignored.
func (f *Formatter) Format(p *Pattern, args Args) (string, []error) {
	var warnings []error
	for _, name := range p.refs {
		if _, ok := args[name]; !ok {
			warnings = append(warnings, fmt.Errorf("%w: %s", ErrUnresolvedArgument, name))
		}
	}

	if p.static || p.localizer == nil {
		return p.source, warnings
	}

	data := make(map[string]any, len(args)+len(warnings))
	for name, v := range args {
		data[name] = v.render(f.format)
	}
	for _, name := range p.refs {
		if _, ok := data[name]; !ok {
			data[name] = "{{" + name + "}}"
		}
	}

	lc := &goi18n.LocalizeConfig{
		MessageID:    p.key,
		TemplateData: data,
	}
	if p.count != "" {
		if v, ok := args[p.count]; ok {
			if n, ok := v.pluralCount(); ok {
				lc.PluralCount = n
			} else {
				warnings = append(warnings, fmt.Errorf("%w: %s=%q", ErrInvalidPluralCount, p.count, v.String()))
			}
		}
	}

	text, err := p.localizer.Localize(lc)
	if err != nil {
		warnings = append(warnings, err)
	}

	return text, warnings
}
