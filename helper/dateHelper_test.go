package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnlyUTC(t *testing.T) {
	day, err := ParseDateOnlyUTC("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.UTC, day.Location())
}

func TestParseDateOnlyUTCEmptyMeansToday(t *testing.T) {
	day, err := ParseDateOnlyUTC("")
	require.NoError(t, err)
	assert.Equal(t, StartOfDayUTC(time.Now()), day)
}

func TestParseDateOnlyUTCRejectsBadInput(t *testing.T) {
	bad := []string{
		"2024-3-5",
		"05-03-2024",
		"2024/03/05",
		"2024-03-05T10:00:00Z",
		"2024-13-40",
		"2023-02-29",
		"garbage",
	}
	for _, input := range bad {
		_, err := ParseDateOnlyUTC(input)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", input)
	}
}

func TestStartOfDayUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 3, 5, 2, 30, 0, 0, ist)

	// 02:30 IST is still the previous day in UTC
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), StartOfDayUTC(local))
}
