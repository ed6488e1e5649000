//go:build unit

package jwt_generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiry(t *testing.T) {
	testCases := []struct {
		name      string
		rawExpiry string
		expected  time.Duration
	}{
		{
			name:      "seconds",
			rawExpiry: "30s",
			expected:  30 * time.Second,
		},
		{
			name:      "minutes",
			rawExpiry: "5m",
			expected:  5 * time.Minute,
		},
		{
			name:      "hours",
			rawExpiry: "12h",
			expected:  12 * time.Hour,
		},
		{
			name:      "days",
			rawExpiry: "7d",
			expected:  7 * 24 * time.Hour,
		},
		{
			name:      "weeks",
			rawExpiry: "2w",
			expected:  2 * 7 * 24 * time.Hour,
		},
		{
			name:      "empty string falls back",
			rawExpiry: "",
			expected:  DefaultAccessExpiry,
		},
		{
			name:      "unknown unit falls back",
			rawExpiry: "10y",
			expected:  DefaultAccessExpiry,
		},
		{
			name:      "missing value falls back",
			rawExpiry: "h",
			expected:  DefaultAccessExpiry,
		},
		{
			name:      "negative value falls back",
			rawExpiry: "-5h",
			expected:  DefaultAccessExpiry,
		},
		{
			name:      "non-numeric value falls back",
			rawExpiry: "abch",
			expected:  DefaultAccessExpiry,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ParseExpiry(testCase.rawExpiry, DefaultAccessExpiry))
		})
	}
}
