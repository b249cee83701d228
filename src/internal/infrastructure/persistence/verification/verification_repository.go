package verification

import (
	"errors"

	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// VerificationRepositoryImpl
// ===========================

// VerificationRepositoryImpl 驗證記錄倉儲實現（GORM）
//
// 設計原則：
// - 實作 verification.VerificationRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 封裝所有資料庫操作細節
// - 將 GORM 錯誤轉換為 Domain 錯誤
//
// 依賴：
// - *gorm.DB: GORM 資料庫實例（由 DI 容器注入）
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

// NewVerificationRepository 創建新的驗證記錄倉儲實例
//
// 參數：
// - db: GORM 資料庫實例
//
// 返回：
// - verification.VerificationRepository: 倉儲接口實例
func NewVerificationRepository(db *gorm.DB) verification.VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

// Save 保存驗證記錄（僅新增）
//
// 實作邏輯：
// 1. 從 TransactionContext 獲取 DB 實例
// 2. 將 Domain 模型轉換為 GORM 模型
// 3. 使用 GORM Create（驗證記錄不可變，不做 Upsert）
// 4. 處理主鍵衝突錯誤
//
// 錯誤處理：
// - UNIQUE constraint 違反 → ErrVerificationAlreadyExists
// - 其他資料庫錯誤 → 原始錯誤
func (r *VerificationRepositoryImpl) Save(ctx shared.TransactionContext, record *verification.VerificationRecord) error {
	// 1. 獲取 DB 實例
	db := r.getDB(ctx)

	// 2. 轉換為 GORM 模型
	gormModel := toGORM(record)

	// 3. 執行 Insert
	result := db.Create(gormModel)
	if result.Error != nil {
		// 4. 處理唯一約束錯誤
		if isUniqueConstraintError(result.Error) {
			return verification.ErrVerificationAlreadyExists.WithContext(
				"verification_id", record.VerificationID().String(),
			)
		}
		return result.Error
	}

	return nil
}

// FindByID 根據驗證記錄 ID 查找記錄
//
// 實作邏輯：
// 1. 從 TransactionContext 獲取 DB 實例
// 2. 使用 GORM Where + First 查詢
// 3. 將 GORM 模型轉換為 Domain 模型
// 4. 處理 Not Found 錯誤
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → verification.ErrVerificationNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *VerificationRepositoryImpl) FindByID(ctx shared.TransactionContext, verificationID verification.VerificationID) (*verification.VerificationRecord, error) {
	// 1. 獲取 DB 實例
	db := r.getDB(ctx)

	var gormModel VerificationGORM

	// 2. 查詢資料庫
	result := db.Where("verification_id = ?", verificationID.String()).First(&gormModel)
	if result.Error != nil {
		// 3. 處理 Not Found
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, verification.ErrVerificationNotFound.WithContext(
				"verification_id", verificationID.String(),
			)
		}
		return nil, result.Error
	}

	// 4. 轉換為 Domain 模型
	return gormModel.toDomain()
}

// CountByOutcome 統計指定結果的記錄數量
//
// 實作邏輯：
// 1. 從 TransactionContext 獲取 DB 實例
// 2. 使用 COUNT 查詢（效能優化，不載入完整資料）
// 3. 返回計數
//
// 注意：
// - outcome 欄位有索引，統計查詢不做全表掃描
func (r *VerificationRepositoryImpl) CountByOutcome(ctx shared.TransactionContext, outcome verification.Outcome) (int64, error) {
	// 1. 獲取 DB 實例
	db := r.getDB(ctx)

	var count int64

	// 2. COUNT 查詢
	result := db.Model(&VerificationGORM{}).Where("outcome = ?", outcome.String()).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	// 3. 返回計數
	return count, nil
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
//
// 這個方法實現了可選事務參與模式：
// - 寫操作：必須在事務中（ctx != nil）
// - 讀操作：可選擇是否參與事務
func (r *VerificationRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	// 類型斷言：TransactionContext → gormTransactionContext
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}

	// 如果不是 gormTransactionContext，使用預設 DB
	return r.db
}

// ===========================
// Helper Functions
// ===========================

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 參數：
// - err: GORM 錯誤
//
// 返回：
// - bool: true 表示唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - PostgreSQL: "duplicate key value violates unique constraint"
// - MySQL: "Duplicate entry"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return containsAny(errMsg,
		"UNIQUE constraint failed",   // SQLite
		"duplicate key value",        // PostgreSQL
		"Duplicate entry",            // MySQL
		"violates unique constraint", // PostgreSQL (alternative)
	)
}

// containsAny 檢查字串是否包含任一子字串
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if len(s) >= len(substr) {
			// Simple substring check (not using strings.Contains to avoid import)
			for i := 0; i <= len(s)-len(substr); i++ {
				if s[i:i+len(substr)] == substr {
					return true
				}
			}
		}
	}
	return false
}
