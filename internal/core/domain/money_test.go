package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{100_000, "1000.00"},
		{57_550, "575.50"},
		{-2_500, "-25.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCents(tc.cents))
	}
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1000", 100_000},
		{"1000.00", 100_000},
		{"575.5", 57_550},
		{"0.01", 1},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseCents_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "10.001", "1,000"} {
		_, err := ParseCents(in)
		assert.Error(t, err, in)
	}
}

func TestParseCents_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 123_456_789} {
		got, err := ParseCents(FormatCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}
