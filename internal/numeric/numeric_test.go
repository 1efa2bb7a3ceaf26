package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -3.0, Round(-2.5, 0))
}

func TestRound_Places(t *testing.T) {
	assert.InDelta(t, 3.14159265, Round(3.14159265358979, 8), 1e-12)
	assert.InDelta(t, 3.14, Round(3.14159265, 2), 1e-12)
	assert.Equal(t, 0.5, Round(0.5, 4))
}

func TestRound_NegativeDigitsTreatedAsZero(t *testing.T) {
	assert.Equal(t, 3.0, Round(3.14, -2))
}

func TestTruncate_Zero(t *testing.T) {
	// The 10^-precision offset keeps log10 defined; zero must not panic.
	assert.Equal(t, 0.0, Truncate(0, 8))
}

func TestTruncate_Negative(t *testing.T) {
	// |x| ~ 1234.57, base 3, so only one decimal place survives.
	assert.InDelta(t, -1234.6, Truncate(-1234.5678, 4), 1e-12)
}

func TestTruncate_MagnitudeAboveOne(t *testing.T) {
	// base 2 at precision 2 leaves the max(…, 1) floor in charge.
	assert.InDelta(t, 123.5, Truncate(123.456, 2), 1e-12)
}

func TestTruncate_MagnitudeBelowOne(t *testing.T) {
	// Small magnitudes gain decimal places instead of losing them.
	assert.InDelta(t, 0.00012345, Truncate(0.00012345, 4), 1e-15)
}

func TestNormalize_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		digits    int
		precision int
		want      float64
	}{
		{"zero", 0, 8, 8, 0},
		{"negative", -2.25, 8, 8, -2.25},
		{"above one", 3.14159265, 8, 8, 3.14159265},
		{"below one", 0.5, 8, 8, 0.5},
		{"noisy unit value", 0.9999999999999997, 8, 8, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.value, tt.digits, tt.precision), 1e-12)
		})
	}
}

func TestNormalize_RoundsBeforeTruncating(t *testing.T) {
	// Rounding to 2 places happens first; truncation then re-rounds the
	// already-rounded result.
	assert.InDelta(t, 3.14, Normalize(3.14159265, 2, 8), 1e-12)
}
