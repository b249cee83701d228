package shared_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
)

// 測試用標記類型：模擬兩個不同聚合的 ID
type recordMarker struct{}
type auditMarker struct{}

type recordID = shared.EntityID[recordMarker]
type auditID = shared.EntityID[auditMarker]

// stubDomainError 模擬支持 WithContext 的領域錯誤
type stubDomainError struct {
	message string
	context map[string]interface{}
}

func (e *stubDomainError) Error() string {
	return e.message
}

func (e *stubDomainError) WithContext(keyValues ...interface{}) error {
	ctx := make(map[string]interface{})
	for i := 0; i+1 < len(keyValues); i += 2 {
		key := keyValues[i].(string)
		ctx[key] = keyValues[i+1]
	}
	return &stubDomainError{message: e.message, context: ctx}
}

var errInvalidRecordID = &stubDomainError{message: "invalid record ID"}

// Test 1: NewEntityID 生成唯一 UUID
func TestNewEntityID_GeneratesUniqueUUIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[recordMarker]()
	id2 := shared.NewEntityID[recordMarker]()

	// Assert
	assert.NotEqual(t, "", id1.String())
	assert.NotEqual(t, "", id2.String())
	assert.NotEqual(t, id1.String(), id2.String(), "每次生成的 UUID 應該不同")
}

// Test 2: EntityIDFromString 解析有效 UUID
func TestEntityIDFromString_ValidUUID_Success(t *testing.T) {
	// Arrange
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	// Act
	id, err := shared.EntityIDFromString[recordMarker](validUUID, errInvalidRecordID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, validUUID, id.String())
}

// Test 3: EntityIDFromString 解析無效 UUID 返回錯誤
func TestEntityIDFromString_InvalidUUID_ReturnsError(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"空字串", ""},
		{"不是 UUID 格式", "not-a-uuid"},
		{"錯誤格式", "123-456-789"},
		{"部分 UUID", "550e8400-e29b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			id, err := shared.EntityIDFromString[recordMarker](tt.value, errInvalidRecordID)

			// Assert
			assert.Error(t, err)
			assert.True(t, id.IsEmpty(), "解析失敗應該返回空 ID")

			var stubErr *stubDomainError
			assert.True(t, errors.As(err, &stubErr))
			assert.Equal(t, "invalid record ID", stubErr.message)
		})
	}
}

// Test 4: Equals 比較相同 UUID
func TestEntityID_Equals_SameUUID_ReturnsTrue(t *testing.T) {
	// Arrange
	uuid := "550e8400-e29b-41d4-a716-446655440000"
	id1, _ := shared.EntityIDFromString[recordMarker](uuid, errInvalidRecordID)
	id2, _ := shared.EntityIDFromString[recordMarker](uuid, errInvalidRecordID)

	// Act & Assert
	assert.True(t, id1.Equals(id2))
}

// Test 5: Equals 比較不同 UUID
func TestEntityID_Equals_DifferentUUID_ReturnsFalse(t *testing.T) {
	// Arrange
	id1 := shared.NewEntityID[recordMarker]()
	id2 := shared.NewEntityID[recordMarker]()

	// Act & Assert
	assert.False(t, id1.Equals(id2))
}

// Test 6: IsEmpty 判斷空 ID
func TestEntityID_IsEmpty(t *testing.T) {
	// Arrange
	emptyID := recordID{} // 零值
	validID := shared.NewEntityID[recordMarker]()

	// Act & Assert
	assert.True(t, emptyID.IsEmpty(), "零值應該是空 ID")
	assert.False(t, validID.IsEmpty(), "生成的 ID 不應該為空")
}

// Test 7: String 規範化為小寫 UUID
func TestEntityID_String_ReturnsLowercaseUUID(t *testing.T) {
	// Arrange
	upperUUID := "550E8400-E29B-41D4-A716-446655440000"

	// Act
	id, _ := shared.EntityIDFromString[recordMarker](upperUUID, errInvalidRecordID)

	// Assert - uuid.Parse 規範化為小寫
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

// Test 8: 不同標記類型的 ID 是不同類型（編譯時保證）
func TestEntityID_TypeSafety_DifferentMarkers(t *testing.T) {
	// Arrange
	idA := shared.NewEntityID[recordMarker]()
	idB := shared.NewEntityID[auditMarker]()

	// Assert - 類型不同
	assert.IsType(t, recordID{}, idA)
	assert.IsType(t, auditID{}, idB)

	// 以下代碼無法編譯（類型不匹配）：
	// idA.Equals(idB) // ✗ 編譯錯誤

	// 這是類型安全的保證：VerificationID 不能拿去比對其他聚合的 ID
}

// Test 9: 解析失敗時錯誤帶上下文
func TestEntityIDFromString_AddsContextToError(t *testing.T) {
	// Act
	_, err := shared.EntityIDFromString[recordMarker]("bad-uuid", errInvalidRecordID)

	// Assert
	assert.Error(t, err)

	var stubErr *stubDomainError
	assert.True(t, errors.As(err, &stubErr))
	assert.Equal(t, "bad-uuid", stubErr.context["input"])
	assert.NotNil(t, stubErr.context["parse_error"])
}

// Test 10: 錯誤模板不支持 WithContext 時原樣返回
func TestEntityIDFromString_HandlesErrorsWithoutWithContext(t *testing.T) {
	// Arrange
	simpleErr := errors.New("simple error")

	// Act
	id, err := shared.EntityIDFromString[recordMarker]("not-a-uuid", simpleErr)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, simpleErr, err, "應該直接返回原始錯誤")
	assert.True(t, id.IsEmpty())
}

// Test 11: 並發生成（值類型天然並發安全）
func TestEntityID_ConcurrencySafe(t *testing.T) {
	// Arrange
	const goroutines = 100
	ids := make([]recordID, goroutines)
	done := make(chan bool)

	// Act - 並發生成 ID
	for i := 0; i < goroutines; i++ {
		go func(index int) {
			ids[index] = shared.NewEntityID[recordMarker]()
			done <- true
		}(i)
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}

	// Assert - 所有 ID 應該唯一且有效
	uniqueIDs := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, id.IsEmpty(), "生成的 ID 不應為空")
		idStr := id.String()
		assert.False(t, uniqueIDs[idStr], "ID 應該唯一: %s", idStr)
		uniqueIDs[idStr] = true
	}
	assert.Equal(t, goroutines, len(uniqueIDs))
}
