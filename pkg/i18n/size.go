package i18n

import (
	"math"
	"strconv"
)

// Binary size units, smallest first.
var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// AdjustedSize renders a byte count in the largest binary unit whose scaled
// value is at least 1. Bytes are shown as an integer ("1023 B"); larger units
// keep two decimal places ("1.00 KiB", "1.23 GiB").
func (lf *LocaleFormat) AdjustedSize(bytes uint64) string {
	if bytes < 1024 {
		return strconv.FormatUint(bytes, 10) + " " + sizeUnits[0]
	}

	exp := 0
	for n := bytes; n >= 1024 && exp < len(sizeUnits)-1; n /= 1024 {
		exp++
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	return lf.fixed(value, 2, false) + " " + sizeUnits[exp]
}

// AdjustedSize formats bytes with the en-US conventions.
func AdjustedSize(bytes uint64) string {
	return FormatEnUS().AdjustedSize(bytes)
}
