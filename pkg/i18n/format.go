package i18n

import (
	"strconv"
	"strings"
)

// LocaleFormat contains the numeric conventions of a locale.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English formatting.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// FormatEnUS returns a LocaleFormat configured for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
// An empty separator disables grouping.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// FormatInt formats a signed integer with the locale's grouping.
func (lf *LocaleFormat) FormatInt(n int64) string {
	if n < 0 {
		// -(n+1)+1 avoids overflowing on math.MinInt64.
		return "-" + lf.group(strconv.FormatUint(uint64(-(n+1))+1, 10))
	}
	return lf.group(strconv.FormatInt(n, 10))
}

// FormatUint formats an unsigned integer with the locale's grouping.
func (lf *LocaleFormat) FormatUint(n uint64) string {
	return lf.group(strconv.FormatUint(n, 10))
}

// FormatDecimal formats n with exactly places fractional digits, using the
// locale's grouping and decimal separator.
func (lf *LocaleFormat) FormatDecimal(n float64, places int) string {
	return lf.fixed(n, places, true)
}

func (lf *LocaleFormat) fixed(n float64, places int, grouped bool) string {
	str := strconv.FormatFloat(n, 'f', places, 64)

	negative := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	intPart, decPart, hasDec := strings.Cut(str, ".")
	if grouped {
		intPart = lf.group(intPart)
	}

	result := intPart
	if hasDec {
		result += lf.decimalSeparator + decPart
	}
	if negative {
		result = "-" + result
	}
	return result
}

func (lf *LocaleFormat) group(digits string) string {
	if len(digits) <= 3 || lf.thousandSeparator == "" {
		return digits
	}

	var result []string
	for i := len(digits); i > 0; i -= 3 {
		start := max(0, i-3)
		result = append([]string{digits[start:i]}, result...)
	}

	return strings.Join(result, lf.thousandSeparator)
}
