package persistence

import (
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// gormTransactionManager GORM 事務管理器實作
//
// 設計原則：
// 1. 實作 shared.TransactionManager 介面
// 2. 封裝事務的開啟、提交、回滾生命週期
// 3. Application Layer 只需提供業務邏輯函數，不接觸 GORM
//
// 事務保證：
// - fn 返回 nil → 提交
// - fn 返回錯誤 → 回滾，錯誤原樣返回
// - fn 發生 panic → 回滾後重新拋出（由調用者決定如何處理）
type gormTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 GORM 事務管理器
// 參數：
// - db: GORM 資料庫連接
// 返回：
// - shared.TransactionManager: 事務管理器介面
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &gormTransactionManager{db: db}
}

// InTransaction 在單一事務中執行 fn
//
// 實作邏輯：
// 1. 開啟事務
// 2. 以事務包裝的 TransactionContext 調用 fn
// 3. fn 成功 → Commit；fn 失敗 → Rollback
// 4. panic → Rollback 後 re-panic（事務不可懸掛）
func (m *gormTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// 1. 開啟事務
	tx := m.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// 2. panic 保護：回滾後重新拋出
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// 3. 執行業務邏輯
	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	// 4. 提交事務
	return tx.Commit().Error
}
