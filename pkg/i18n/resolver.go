package i18n

import (
	"errors"
	"log/slog"
	"strings"
)

// DiagnosticPrefix starts every diagnostic string returned in place of a
// message that could not be resolved.
const DiagnosticPrefix = "i18n-"

// Diagnostic strings. Those ending in "=" are followed by the requested id.
const (
	DiagnosticCannotLock     = DiagnosticPrefix + "cannot-lock"
	DiagnosticNoCatalog      = DiagnosticPrefix + "no-catalog"
	DiagnosticNoMessage      = DiagnosticPrefix + "no-message="
	DiagnosticNoAttribute    = DiagnosticPrefix + "no-attr="
	DiagnosticNoMessageValue = DiagnosticPrefix + "no-message-value="
)

// MissingKind tells why a lookup could not produce text.
type MissingKind int

const (
	Resolved MissingKind = iota
	MissingMessage
	MissingAttribute
	MissingValue
	LockUnavailable
	CatalogUnavailable
)

func (k MissingKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case MissingMessage:
		return "missing_message"
	case MissingAttribute:
		return "missing_attribute"
	case MissingValue:
		return "missing_value"
	case LockUnavailable:
		return "lock_unavailable"
	case CatalogUnavailable:
		return "catalog_unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a lookup before it is collapsed into text.
type Result struct {
	// ID is the requested lookup key, including any attribute suffix.
	ID string
	// Text is the normalized output; empty unless Missing is Resolved.
	Text string
	// Warnings are soft formatting errors, e.g. unresolved arguments.
	Warnings []error
	Missing  MissingKind
}

// OK reports whether the lookup resolved to catalog text.
func (r Result) OK() bool {
	return r.Missing == Resolved
}

// String returns the resolved text, or a diagnostic naming the requested id.
func (r Result) String() string {
	switch r.Missing {
	case Resolved:
		return r.Text
	case MissingMessage:
		return DiagnosticNoMessage + r.ID
	case MissingAttribute:
		return DiagnosticNoAttribute + r.ID
	case MissingValue:
		return DiagnosticNoMessageValue + r.ID
	case CatalogUnavailable:
		return DiagnosticNoCatalog
	default:
		return DiagnosticCannotLock
	}
}

// Resolver looks messages up by id, formats and normalizes them.
// Resolution never fails: problems are reported through the Result.
type Resolver struct {
	registry  *Registry
	formatter *Formatter
	logger    *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFormatter sets the pattern formatter.
// Defaults to NewFormatter(nil).
func WithFormatter(f *Formatter) ResolverOption {
	return func(r *Resolver) {
		if f != nil {
			r.formatter = f
		}
	}
}

// WithLogger sets the logger used to report degraded lookups.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver over the catalog held by registry.
func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		panic("i18n: registry is not provided")
	}

	r := &Resolver{
		registry:  registry,
		formatter: NewFormatter(nil),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup resolves id against the catalog. id is either a message id or
// "message.attribute"; only the first '.' separates the two.
func (r *Resolver) Lookup(id string, args Args) Result {
	name, attr, hasAttr := strings.Cut(id, ".")
	res := Result{ID: id}

	var text string
	err := r.registry.Do(func(c *Catalog) {
		msg, ok := c.Message(name)
		if !ok {
			res.Missing = MissingMessage
			return
		}

		var p *Pattern
		if hasAttr {
			if p, ok = msg.Attribute(attr); !ok {
				res.Missing = MissingAttribute
				return
			}
		} else if p, ok = msg.Value(); !ok {
			res.Missing = MissingValue
			return
		}

		text, res.Warnings = r.formatter.Format(p, args)
	})

	switch {
	case errors.Is(err, ErrLockPoisoned):
		res.Missing = LockUnavailable
	case err != nil:
		res.Missing = CatalogUnavailable
	case res.Missing == Resolved:
		res.Text = Normalize(text)
	}

	r.report(res)
	return res
}

// Resolve is Lookup collapsed into displayable text.
func (r *Resolver) Resolve(id string, args Args) string {
	return r.Lookup(id, args).String()
}

func (r *Resolver) report(res Result) {
	if !res.OK() {
		r.logger.Warn("message could not be resolved",
			slog.String("id", res.ID),
			slog.String("kind", res.Missing.String()),
		)
		return
	}
	for _, w := range res.Warnings {
		r.logger.Debug("message formatted with warnings",
			slog.String("id", res.ID),
			slog.String("error", w.Error()),
		)
	}
}
