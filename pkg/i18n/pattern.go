package i18n

import (
	"fmt"
	"slices"
	"strings"
	"text/template"
	"text/template/parse"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// Plural form keys accepted in a plural pattern table.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"

	// pluralCountKey names the argument that selects the plural form.
	pluralCountKey = "count"
)

// Pattern is a compiled message template owned by a MessageDefinition.
// Patterns are immutable; formatting never changes them.
type Pattern struct {
	localizer *goi18n.Localizer

	// Bundle message ID: "id" for values, "id.attr" for attributes.
	key    string
	source string
	count  string
	refs   []string
	plural bool
	static bool
}

// Key returns the lookup key the pattern is registered under.
func (p *Pattern) Key() string {
	return p.key
}

// Source returns the pattern text, or its "other" form for plural patterns.
func (p *Pattern) Source() string {
	return p.source
}

// Arguments returns the sorted names of the arguments the pattern references.
func (p *Pattern) Arguments() []string {
	return slices.Clone(p.refs)
}

// IsPlural reports whether the pattern selects between plural forms.
func (p *Pattern) IsPlural() bool {
	return p.plural
}

// compilePattern validates raw catalog data for one pattern and returns the
// pattern together with the go-i18n message that backs it.
func compilePattern(key string, raw any) (*Pattern, *goi18n.Message, error) {
	msg := &goi18n.Message{ID: key}
	p := &Pattern{key: key}

	switch v := raw.(type) {
	case string:
		msg.Other = v
	case map[string]any:
		p.plural = true
		hasOther := false
		for form, val := range v {
			text, ok := val.(string)
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q: form %q must be a string, got %T", ErrInvalidPattern, key, form, val)
			}
			switch form {
			case pluralCountKey:
				p.count = text
			case PluralZero:
				msg.Zero = text
			case PluralOne:
				msg.One = text
			case PluralTwo:
				msg.Two = text
			case PluralFew:
				msg.Few = text
			case PluralMany:
				msg.Many = text
			case PluralOther:
				msg.Other = text
				hasOther = true
			default:
				return nil, nil, fmt.Errorf("%w: %q: unknown plural form %q", ErrInvalidPattern, key, form)
			}
		}
		if !hasOther {
			return nil, nil, fmt.Errorf("%w: %q: plural pattern requires an %q form", ErrInvalidPattern, key, PluralOther)
		}
		if p.count == "" {
			return nil, nil, fmt.Errorf("%w: %q: plural pattern requires a %q argument", ErrInvalidPattern, key, pluralCountKey)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q: expected a string or plural table, got %T", ErrInvalidPattern, key, raw)
	}

	p.source = msg.Other

	seen := make(map[string]bool)
	if p.count != "" {
		seen[p.count] = true
	}
	for _, text := range []string{msg.Zero, msg.One, msg.Two, msg.Few, msg.Many, msg.Other} {
		names, err := templateArguments(text)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, key, err)
		}
		for _, name := range names {
			seen[name] = true
		}
	}
	for name := range seen {
		p.refs = append(p.refs, name)
	}
	slices.Sort(p.refs)

	p.static = !p.plural && len(p.refs) == 0 && !strings.Contains(p.source, "{{")

	return p, msg, nil
}

// templateArguments returns the top-level field names a template body reads
// from its data, e.g. "path" for {{.path}}.
func templateArguments(src string) ([]string, error) {
	if !strings.Contains(src, "{{") {
		return nil, nil
	}

	tmpl, err := template.New("").Parse(src)
	if err != nil {
		return nil, err
	}
	if tmpl.Tree == nil {
		return nil, nil
	}

	var names []string
	collectFields(tmpl.Tree.Root, func(name string) {
		names = append(names, name)
	})
	return names, nil
}

func collectFields(node parse.Node, add func(string)) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collectFields(child, add)
		}
	case *parse.ActionNode:
		collectFields(n.Pipe, add)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			collectFields(cmd, add)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			collectFields(arg, add)
		}
	case *parse.ChainNode:
		collectFields(n.Node, add)
	case *parse.FieldNode:
		if len(n.Ident) > 0 {
			add(n.Ident[0])
		}
	case *parse.IfNode:
		collectBranch(&n.BranchNode, add)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, add)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, add)
	case *parse.TemplateNode:
		collectFields(n.Pipe, add)
	}
}

func collectBranch(b *parse.BranchNode, add func(string)) {
	collectFields(b.Pipe, add)
	collectFields(b.List, add)
	collectFields(b.ElseList, add)
}
