package i18n_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savevault/lang/pkg/i18n"
)

func TestLocaleFormat(t *testing.T) {
	t.Parallel()

	t.Run("default English format", func(t *testing.T) {
		t.Parallel()
		lf := i18n.FormatEnUS()

		require.Equal(t, "0", lf.FormatInt(0))
		require.Equal(t, "999", lf.FormatInt(999))
		require.Equal(t, "1,000", lf.FormatInt(1000))
		require.Equal(t, "1,234,567", lf.FormatInt(1234567))
		require.Equal(t, "-1,234", lf.FormatInt(-1234))
		require.Equal(t, "-9,223,372,036,854,775,808", lf.FormatInt(math.MinInt64))
		require.Equal(t, "18,446,744,073,709,551,615", lf.FormatUint(math.MaxUint64))
		require.Equal(t, "1,234.50", lf.FormatDecimal(1234.5, 2))
		require.Equal(t, "-0.5", lf.FormatDecimal(-0.5, 1))
		require.Equal(t, "12", lf.FormatDecimal(12.4, 0))
	})

	t.Run("custom format", func(t *testing.T) {
		t.Parallel()
		lf := i18n.NewLocaleFormat(
			i18n.WithDecimalSeparator(","),
			i18n.WithThousandSeparator("."),
		)

		require.Equal(t, "1.234.567", lf.FormatInt(1234567))
		require.Equal(t, "1.234,50", lf.FormatDecimal(1234.5, 2))
	})

	t.Run("grouping disabled", func(t *testing.T) {
		t.Parallel()
		lf := i18n.NewLocaleFormat(i18n.WithThousandSeparator(""))
		require.Equal(t, "1234567", lf.FormatUint(1234567))
	})
}
