package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// VerificationID Tests
// ===========================

// Test 1: Generated IDs are unique and non-empty
func TestNewVerificationID_Unique(t *testing.T) {
	// Act
	first := NewVerificationID()
	second := NewVerificationID()

	// Assert
	assert.False(t, first.IsEmpty())
	assert.False(t, second.IsEmpty())
	assert.False(t, first.Equals(second))
}

// Test 2: String round-trips through VerificationIDFromString
func TestVerificationIDFromString_RoundTrip(t *testing.T) {
	// Arrange
	original := NewVerificationID()

	// Act
	parsed, err := VerificationIDFromString(original.String())

	// Assert
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

// Test 3: Malformed UUID strings are rejected with the domain error
func TestVerificationIDFromString_Invalid_ReturnsError(t *testing.T) {
	// Act
	_, err := VerificationIDFromString("not-a-uuid")

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVerificationID)
}

// ===========================
// Outcome Tests
// ===========================

// Test 4: Known outcomes round-trip, unknown strings fail
func TestOutcomeFromString(t *testing.T) {
	// Act
	passed, errPassed := OutcomeFromString("passed")
	rejected, errRejected := OutcomeFromString("rejected")
	_, errBad := OutcomeFromString("partial")

	// Assert
	require.NoError(t, errPassed)
	require.NoError(t, errRejected)
	assert.Equal(t, OutcomePassed, passed)
	assert.Equal(t, OutcomeRejected, rejected)
	assert.Error(t, errBad)
	assert.ErrorIs(t, errBad, ErrInvalidOutcome)
}
