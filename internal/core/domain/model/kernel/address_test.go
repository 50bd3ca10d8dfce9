package kernel_test

import (
	"testing"

	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should lower-case street and postal code", func(t *testing.T) {
		addr, err := kernel.NewAddress(7, "Oak Ave", "B2B2B2")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, 7, addr.Number())
		assert.Equal(t, "oak ave", addr.Street())
		assert.Equal(t, "b2b2b2", addr.PostalCode())
	})

	t.Run("should fail with blank street and postal code", func(t *testing.T) {
		addr, err := kernel.NewAddress(7, " ", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "postal code")
		assert.Error(t, addr.Validate())
	})
}

func TestParseAddress(t *testing.T) {
	t.Run("should normalise a mixed-case address", func(t *testing.T) {
		addr, err := kernel.ParseAddress("7, Oak Ave, B2B2B2")

		require.NoError(t, err)
		want, _ := kernel.NewAddress(7, "oak ave", "b2b2b2")
		assert.True(t, addr.Equals(want))
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		addr, err := kernel.ParseAddress("  12, main st, a1a1a1 \n")

		require.NoError(t, err)
		assert.Equal(t, 12, addr.Number())
		assert.Equal(t, "a1a1a1", addr.PostalCode())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{"too few fields", "7, oak ave"},
			{"too many fields", "7, oak ave, b2b2b2, extra"},
			{"wrong separator", "7,oak ave,b2b2b2"},
			{"non-integer number", "seven, oak ave, b2b2b2"},
			{"empty", ""},
			{"blank street", "7,  , b2b2b2"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.ParseAddress(tc.input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)

				var invalidErr *errs.ValueIsInvalidError
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, "address", invalidErr.ParamName)
			})
		}
	})
}

func TestAddress_Equals(t *testing.T) {
	a, _ := kernel.NewAddress(7, "oak ave", "b2b2b2")
	b, _ := kernel.NewAddress(7, "OAK AVE", "B2B2B2")
	c, _ := kernel.NewAddress(8, "oak ave", "b2b2b2")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestAddress_String(t *testing.T) {
	addr, _ := kernel.NewAddress(12, "Main St", "A1A1A1")

	assert.Equal(t, "[12, main st, a1a1a1]", addr.String())
}

func TestAddress_Validate(t *testing.T) {
	var addr kernel.Address

	assert.Equal(t, kernel.ErrAddressIsNotConstructed, addr.Validate())
}
