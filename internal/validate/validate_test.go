package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "http", input: "http://example.com", expected: true},
		{name: "https with path", input: "https://example.com/a/b?c=d", expected: true},
		{name: "ftp scheme", input: "ftp://example.com", expected: false},
		{name: "javascript scheme", input: "javascript:alert(1)", expected: false},
		{name: "relative", input: "/relative/path", expected: false},
		{name: "garbage", input: "not a url", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "missing host", input: "http://", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidHTTPURL(tt.input))
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	t.Run("empty input is absent", func(t *testing.T) {
		d, ok := ParseOptionalDate("")
		assert.True(t, ok)
		assert.Nil(t, d)

		d, ok = ParseOptionalDate("   ")
		assert.True(t, ok)
		assert.Nil(t, d)
	})

	t.Run("RFC3339", func(t *testing.T) {
		d, ok := ParseOptionalDate("2030-01-02T03:04:05Z")
		require.True(t, ok)
		require.NotNil(t, d)
		assert.True(t, d.Equal(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)))
	})

	t.Run("date only", func(t *testing.T) {
		d, ok := ParseOptionalDate("2030-01-02")
		require.True(t, ok)
		require.NotNil(t, d)
		assert.Equal(t, 2030, d.Year())
	})

	t.Run("invalid", func(t *testing.T) {
		d, ok := ParseOptionalDate("not-a-date")
		assert.False(t, ok)
		assert.Nil(t, d)
	})
}
