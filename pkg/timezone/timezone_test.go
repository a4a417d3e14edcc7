package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegacl/bodega-api/pkg/timezone"
)

func TestParseDate_MedianocheLocal(t *testing.T) {
	got, err := timezone.ParseDate("2025-06-15")
	require.NoError(t, err)

	local := got.In(timezone.Location())
	assert.Equal(t, 2025, local.Year())
	assert.Equal(t, time.June, local.Month())
	assert.Equal(t, 15, local.Day())
	assert.Equal(t, 0, local.Hour())
}

func TestDayAfter_LimiteExclusivo(t *testing.T) {
	from, err := timezone.ParseDate("2025-06-15")
	require.NoError(t, err)
	to, err := timezone.DayAfter("2025-06-15")
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	_, err := timezone.ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestMonthStart(t *testing.T) {
	instant, err := timezone.ParseDate("2025-06-15")
	require.NoError(t, err)

	start := timezone.MonthStart(instant)
	local := start.In(timezone.Location())
	assert.Equal(t, time.June, local.Month())
	assert.Equal(t, 1, local.Day())
	assert.Equal(t, 0, local.Hour())
}

func TestLocalDay(t *testing.T) {
	instant, err := timezone.ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 15, timezone.LocalDay(instant))
}
