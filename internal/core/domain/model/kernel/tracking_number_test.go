package kernel_test

import (
	"testing"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should generate a valid tracking number", func(t *testing.T) {
		number := kernel.NewTrackingNumber()

		require.NoError(t, number.Validate())
		assert.Regexp(t, `^ORD\d{6}$`, number.String())
	})

	t.Run("should round-trip through its string form", func(t *testing.T) {
		number := kernel.NewTrackingNumber()

		parsed, err := kernel.TrackingNumberFromString(number.String())

		require.NoError(t, err)
		assert.True(t, number.IsEqual(parsed))
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("should parse the canonical form", func(t *testing.T) {
		number, err := kernel.TrackingNumberFromString("ORD123456")

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.Equal(t, "ORD123456", number.String())
	})

	t.Run("should reject an empty string", func(t *testing.T) {
		_, err := kernel.TrackingNumberFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		invalid := []string{
			"ord123456",    // lowercase prefix
			"ORD12345",     // too few digits
			"ORD1234567",   // too many digits
			"ORD12345X",    // non-digit suffix
			" ORD123456",   // leading space
			"ORD123456 ",   // trailing space
			"XYZ123456",    // wrong prefix
			"ORD 123456",   // embedded space
		}

		for _, s := range invalid {
			_, err := kernel.TrackingNumberFromString(s)
			require.Error(t, err, "input %q", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var number kernel.TrackingNumber

		err := number.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracking number must be created")
	})
}

func TestTrackingNumber_IsEqual(t *testing.T) {
	t.Run("should compare exact case-sensitive values", func(t *testing.T) {
		first, err := kernel.TrackingNumberFromString("ORD123456")
		require.NoError(t, err)
		second, err := kernel.TrackingNumberFromString("ORD123456")
		require.NoError(t, err)
		other, err := kernel.TrackingNumberFromString("ORD789012")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(other))
	})
}
