package i18n

import "strconv"

type valueKind uint8

const (
	kindString valueKind = iota
	kindInt
	kindUint
)

// Value is a typed argument value: a string, or a signed or unsigned number.
type Value struct {
	str  string
	i    int64
	u    uint64
	kind valueKind
}

// Str returns a string argument value.
func Str(s string) Value {
	return Value{kind: kindString, str: s}
}

// Int returns a signed numeric argument value.
func Int(n int64) Value {
	return Value{kind: kindInt, i: n}
}

// Uint returns an unsigned numeric argument value.
func Uint(n uint64) Value {
	return Value{kind: kindUint, u: n}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.kind != kindString
}

// String returns the value without locale formatting.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindUint:
		return strconv.FormatUint(v.u, 10)
	default:
		return v.str
	}
}

// render returns the value as it is interpolated into a pattern.
func (v Value) render(lf *LocaleFormat) string {
	switch v.kind {
	case kindInt:
		return lf.FormatInt(v.i)
	case kindUint:
		return lf.FormatUint(v.u)
	default:
		return v.str
	}
}

// pluralCount returns the operand used for plural category selection.
// String values qualify only when they hold a number.
func (v Value) pluralCount() (string, bool) {
	if v.kind == kindString {
		if _, err := strconv.ParseFloat(v.str, 64); err != nil {
			return "", false
		}
	}
	return v.String(), true
}

// Args maps argument names to values. An Args value is built for a single
// format call and not modified afterwards.
//
//	args := i18n.Args{
//		"path":       i18n.Str("/backups"),
//		"totalGames": i18n.Int(12),
//	}
type Args map[string]Value
