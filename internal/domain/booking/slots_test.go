package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"09:00:00", "09:00"},
		{"09:00:00.000", "09:00"},
		{" 18:30 ", "18:30"},
		{"00:05", "00:05"},
		{"23:59:59", "23:59"},
	}
	for _, tc := range cases {
		got, err := NormalizeTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeTimeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "09:60", "09:0", "ab:cd", "09:00:61", "009:00", "1:2:3:4",
		"+9:00", "-0:00", "09:+5", "09:00:+1", "09:00:00.x", " 9: 00"} {
		_, err := NormalizeTime(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrValidation), in)
		assert.Equal(t, "invalid_time", Code(err), in)
	}
}

func TestNormalizeSlotsKeepsOrder(t *testing.T) {
	got, err := NormalizeSlots([]string{"14:00", "9:00", "10:00:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "09:00", "10:00"}, got)
}

func TestNormalizeSlotsRejects(t *testing.T) {
	_, err := NormalizeSlots([]string{"09:00", "9:00"})
	assert.Equal(t, "duplicate_slot", Code(err))

	_, err = NormalizeSlots([]string{"09:00", "nine"})
	assert.Equal(t, "invalid_slot", Code(err))

	got, err := NormalizeSlots([]string{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.Format(DateLayout))

	for _, in := range []string{
		"2024-06-10T10:00:00Z",
		"2024-06-10T23:30:00-03:00",
		"2024-06-10T15:30:00.000Z",
		"2024-06-10 09:15",
		"2024-06-10 09:15:00",
	} {
		d, err := ParseDate(in, time.UTC)
		require.NoError(t, err, in)
		assert.Equal(t, "2024-06-10", d.Format(DateLayout), in)
	}

	for _, in := range []string{
		"", "10/06/2024", "2024-13-01", "2024-02-30",
		"2024-06-10Tgarbage", "2024-06-10x10:00", "2024-06-10 25:00", "2024-02-30T10:00:00Z",
	} {
		_, err := ParseDate(in, time.UTC)
		assert.Equal(t, "invalid_date", Code(err), in)
	}
}
