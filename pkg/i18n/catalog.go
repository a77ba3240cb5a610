package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// valueKey is the message table key holding the default pattern.
// Every other key of a message table is an attribute.
const valueKey = "value"

// MessageDefinition is a named message: an optional default pattern plus
// zero or more named attribute patterns.
type MessageDefinition struct {
	value *Pattern
	attrs map[string]*Pattern
	id    string
}

// ID returns the message id.
func (m *MessageDefinition) ID() string {
	return m.id
}

// Value returns the default pattern, if the message has one.
func (m *MessageDefinition) Value() (*Pattern, bool) {
	return m.value, m.value != nil
}

// Attribute returns the named attribute pattern.
func (m *MessageDefinition) Attribute(name string) (*Pattern, bool) {
	p, ok := m.attrs[name]
	return p, ok
}

// Attributes returns the sorted attribute names of the message.
func (m *MessageDefinition) Attributes() []string {
	return slices.Sorted(maps.Keys(m.attrs))
}

// Catalog holds the message definitions of one locale.
// It is immutable once built.
type Catalog struct {
	messages map[string]*MessageDefinition
	bundle   *goi18n.Bundle
	locale   Locale
}

// NewCatalog builds a catalog from decoded resource data. Top-level keys are
// message ids; a string value is the default pattern, a table value holds an
// optional "value" pattern and attribute patterns.
//
// Every pattern is validated up front; the first invalid message aborts the
// build with an error naming its id.
func NewCatalog(locale Locale, data map[string]any) (*Catalog, error) {
	if locale.ID() == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLocale, int(locale))
	}
	if len(data) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		messages: make(map[string]*MessageDefinition, len(data)),
		bundle:   goi18n.NewBundle(locale.Tag()),
		locale:   locale,
	}
	localizer := goi18n.NewLocalizer(c.bundle, locale.ID())

	var compiled []*goi18n.Message
	var patterns []*Pattern

	for _, id := range slices.Sorted(maps.Keys(data)) {
		def, err := buildMessage(id, data[id], func(p *Pattern, msg *goi18n.Message) {
			patterns = append(patterns, p)
			if !p.static {
				compiled = append(compiled, msg)
			}
		})
		if err != nil {
			return nil, err
		}
		c.messages[id] = def
	}

	if err := c.bundle.AddMessages(locale.Tag(), compiled...); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	for _, p := range patterns {
		p.localizer = localizer
	}

	return c, nil
}

func buildMessage(id string, raw any, register func(*Pattern, *goi18n.Message)) (*MessageDefinition, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty message id", ErrInvalidMessage)
	}
	if strings.Contains(id, ".") {
		return nil, fmt.Errorf("%w: %q: message ids cannot contain '.'", ErrInvalidMessage, id)
	}

	def := &MessageDefinition{
		id:    id,
		attrs: make(map[string]*Pattern),
	}

	add := func(name string, raw any) error {
		key := id
		if name != valueKey {
			key = id + "." + name
		}
		p, msg, err := compilePattern(key, raw)
		if err != nil {
			return err
		}
		register(p, msg)
		if name == valueKey {
			def.value = p
		} else {
			def.attrs[name] = p
		}
		return nil
	}

	switch v := raw.(type) {
	case string:
		if err := add(valueKey, v); err != nil {
			return nil, err
		}
	case map[string]any:
		for _, name := range slices.Sorted(maps.Keys(v)) {
			if name == "" {
				return nil, fmt.Errorf("%w: %q: empty attribute name", ErrInvalidMessage, id)
			}
			if err := add(name, v[name]); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q: expected a string or table, got %T", ErrInvalidMessage, id, raw)
	}

	if def.value == nil && len(def.attrs) == 0 {
		return nil, fmt.Errorf("%w: %q: message has neither a value nor attributes", ErrInvalidMessage, id)
	}

	return def, nil
}

// Message returns the definition registered under id.
func (c *Catalog) Message(id string) (*MessageDefinition, bool) {
	m, ok := c.messages[id]
	return m, ok
}

// IDs returns the sorted message ids of the catalog.
func (c *Catalog) IDs() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Keys returns every resolvable lookup key in sorted order: the id of each
// message with a value, and "id.attr" for each attribute.
func (c *Catalog) Keys() []string {
	var keys []string
	for _, id := range c.IDs() {
		m := c.messages[id]
		if m.value != nil {
			keys = append(keys, id)
		}
		for _, attr := range m.Attributes() {
			keys = append(keys, id+"."+attr)
		}
	}
	return keys
}

// Len returns the number of messages.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Locale returns the locale the catalog was built for.
func (c *Catalog) Locale() Locale {
	return c.locale
}
