package verification

import (
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計原則：使用泛型 EntityID[T] 消除重複代碼
//
// 類型安全保證：
// - VerificationID 與其他聚合的 ID 是不同類型（編譯器強制檢查）
// - 不能將別的 ID 賦值給 VerificationID 變量

// VerificationMarker 是 VerificationID 的標記類型
type VerificationMarker struct{}

// VerificationID 驗證記錄的唯一標識符
//
// 實現：EntityID[VerificationMarker] 的類型別名
// 使用：id := NewVerificationID() 或 VerificationIDFromString(s)
type VerificationID = shared.EntityID[VerificationMarker]

// NewVerificationID 生成新的驗證記錄 ID（UUID v4）
//
// 使用場景：創建新驗證記錄時
func NewVerificationID() VerificationID {
	return shared.NewEntityID[VerificationMarker]()
}

// VerificationIDFromString 從字串解析驗證記錄 ID
//
// 返回：
//   VerificationID - 解析成功的 ID
//   error - 解析失敗（返回 ErrInvalidVerificationID）
//
// 使用場景：
// - 從數據庫讀取 ID
// - 從查詢請求解析 ID
func VerificationIDFromString(s string) (VerificationID, error) {
	return shared.EntityIDFromString[VerificationMarker](s, ErrInvalidVerificationID)
}
