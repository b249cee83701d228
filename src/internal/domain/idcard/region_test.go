package idcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// RegionCode Value Object Tests
// ===========================

// Test 1: Six ASCII digits are accepted
func TestNewRegionCode_ValidCode_Success(t *testing.T) {
	// Arrange
	validCodes := []string{
		"420111",
		"110000",
		"000000", // 格式合法即可，是否存在由目錄決定
		"999999",
	}

	for _, code := range validCodes {
		t.Run(code, func(t *testing.T) {
			// Act
			regionCode, err := NewRegionCode(code)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, code, regionCode.String())
		})
	}
}

// Test 2: Anything but six ASCII digits is rejected
func TestNewRegionCode_InvalidFormat_ReturnsError(t *testing.T) {
	// Arrange
	invalidCodes := []string{
		"",
		"42011",   // 5位
		"4201112", // 7位
		"42011a",  // 字母
		"42 111",  // 空格
		"４20111",  // 全形數字
		"42-111",  // 連字號
	}

	for _, code := range invalidCodes {
		t.Run(code, func(t *testing.T) {
			// Act
			_, err := NewRegionCode(code)

			// Assert
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRegionCode)
		})
	}
}

// Test 3: Tier lookup keys are zero-padded to six digits
func TestRegionCode_TierKeys(t *testing.T) {
	// Arrange
	code, err := NewRegionCode("420111")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "420000", code.ProvinceKey())
	assert.Equal(t, "420100", code.CityKey())
	assert.Equal(t, "420111", code.DistrictKey())
}

// Test 4: Province-level detection (XX0000 form)
func TestRegionCode_IsProvinceLevel(t *testing.T) {
	testCases := []struct {
		code     string
		expected bool
	}{
		{"420000", true},
		{"110000", true},
		{"420100", false}, // 地級代碼
		{"420111", false}, // 縣級代碼
		{"420001", false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			// Arrange
			code, err := NewRegionCode(tc.code)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, code.IsProvinceLevel())
		})
	}
}

// Test 5: Equality and zero value
func TestRegionCode_EqualsAndIsZero(t *testing.T) {
	// Arrange
	first, _ := NewRegionCode("420111")
	second, _ := NewRegionCode("420111")
	third, _ := NewRegionCode("110105")

	// Assert
	assert.True(t, first.Equals(second))
	assert.False(t, first.Equals(third))
	assert.False(t, first.IsZero())
	assert.True(t, RegionCode{}.IsZero())
}

// ===========================
// Region Value Object Tests
// ===========================

// Test 6: Accessors and presence checks
func TestRegion_AccessorsAndPresence(t *testing.T) {
	// Arrange
	full := NewRegion("湖北省", "武汉市", "洪山区")
	partial := NewRegion("湖北省", "", "")

	// Assert
	assert.Equal(t, "湖北省", full.Province())
	assert.Equal(t, "武汉市", full.City())
	assert.Equal(t, "洪山区", full.District())
	assert.True(t, full.HasProvince())
	assert.True(t, full.HasCity())
	assert.True(t, full.HasDistrict())

	assert.True(t, partial.HasProvince())
	assert.False(t, partial.HasCity())
	assert.False(t, partial.HasDistrict())
}

// Test 7: Unknown region detection and equality
func TestRegion_IsUnknownAndEquals(t *testing.T) {
	// Arrange
	unknown := NewRegion("", "", "")
	known := NewRegion("湖北省", "武汉市", "洪山区")
	sameKnown := NewRegion("湖北省", "武汉市", "洪山区")

	// Assert
	assert.True(t, unknown.IsUnknown())
	assert.False(t, known.IsUnknown())
	assert.True(t, known.Equals(sameKnown))
	assert.False(t, known.Equals(unknown))
}
