package verification

import "github.com/jackyeh168/resident_id/src/internal/domain/shared"

// ===========================
// VerificationRecord Repository 介面
// ===========================

// VerificationRepository 驗證記錄倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 聚合根持久化：每個聚合根一個 Repository
// 3. 事務支持：使用 TransactionContext 封裝事務，避免基礎設施洩漏
//
// 驗證記錄是不可變的審計資料：只有新增與查詢，沒有更新與刪除
//
// 事務使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       return repo.Save(ctx, record)
//   })
type VerificationRepository interface {
	// Save 保存新的驗證記錄
	// 前置條件：記錄不存在（VerificationID 唯一）
	// 後置條件：記錄已持久化
	// 錯誤：ErrVerificationAlreadyExists（如果 ID 已存在）
	Save(ctx shared.TransactionContext, record *VerificationRecord) error

	// FindByID 根據 ID 查找驗證記錄
	// 返回：找到的記錄，或 ErrVerificationNotFound
	FindByID(ctx shared.TransactionContext, verificationID VerificationID) (*VerificationRecord, error)

	// CountByOutcome 統計指定結果的記錄數量
	// 使用場景：統計服務計算通過率
	CountByOutcome(ctx shared.TransactionContext, outcome Outcome) (int64, error)
}

// ===========================
// Repository 錯誤定義
// ===========================

// Repository 相關錯誤代碼
const (
	ErrCodeVerificationNotFound      ErrorCode = "VERIFICATION_NOT_FOUND"
	ErrCodeVerificationAlreadyExists ErrorCode = "VERIFICATION_ALREADY_EXISTS"
	ErrCodeRepositoryError           ErrorCode = "REPOSITORY_ERROR"
)

// Repository 錯誤實例
var (
	// ErrVerificationNotFound 驗證記錄不存在
	ErrVerificationNotFound = &DomainError{
		Code:    ErrCodeVerificationNotFound,
		Message: "驗證記錄不存在",
	}

	// ErrVerificationAlreadyExists 驗證記錄已存在
	ErrVerificationAlreadyExists = &DomainError{
		Code:    ErrCodeVerificationAlreadyExists,
		Message: "驗證記錄已存在",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "倉儲操作失敗",
	}
)
