package verification

import (
	"fmt"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
)

// ===========================
// BatchVerify Use Case
// ===========================

// BatchVerifyCommand 批次驗證身份證號碼的命令
//
// 輸入：
// - IDNumbers: 待驗證的號碼列表（順序保留）
type BatchVerifyCommand struct {
	IDNumbers []string
}

// BatchVerifyItemResult 批次中單筆號碼的驗證結果
//
// 以輸入順序對應原始號碼（結果不回傳原始號碼，只回傳遮罩後的號碼）
type BatchVerifyItemResult struct {
	VerificationID string
	Valid          bool
	Generation     string
	MaskedNumber   string
	RejectionCode  string
}

// BatchVerifyResult 批次驗證的結果
//
// 輸出：
// - Items: 逐筆結果（與輸入同序）
// - Total / Passed / Rejected: 本批次統計
// - PassRate: 通過率百分比字串（兩位小數，如 "66.67"）
type BatchVerifyResult struct {
	Items    []BatchVerifyItemResult
	Total    int64
	Passed   int64
	Rejected int64
	PassRate string
}

// BatchVerifyUseCase 批次驗證 Use Case
//
// 職責：
// 1. 逐筆解析並建立驗證記錄（通過與拒絕都記錄）
// 2. 在單一事務中保存整個批次
// 3. 以 VerificationStatsService 彙總批次統計
// 4. 提交後發布全部領域事件
//
// 設計原則：
// - 批次原子性：任一筆保存失敗，整個批次回滾
// - 分類失敗不中斷批次（是業務結果，不是錯誤）
// - 事務管理：Use Case 管理事務（不依賴調用者）
type BatchVerifyUseCase struct {
	parser           *idcard.Parser
	verificationRepo verification.VerificationRepository
	statsService     *verification.VerificationStatsService
	txManager        shared.TransactionManager
	eventPublisher   shared.EventPublisher
}

// NewBatchVerifyUseCase 創建 Use Case 實例
func NewBatchVerifyUseCase(
	parser *idcard.Parser,
	verificationRepo verification.VerificationRepository,
	statsService *verification.VerificationStatsService,
	txManager shared.TransactionManager,
	eventPublisher shared.EventPublisher,
) *BatchVerifyUseCase {
	return &BatchVerifyUseCase{
		parser:           parser,
		verificationRepo: verificationRepo,
		statsService:     statsService,
		txManager:        txManager,
		eventPublisher:   eventPublisher,
	}
}

// Execute 執行批次驗證
//
// 執行流程：
// 1. 空批次直接返回零統計（不開啟事務）
// 2. 逐筆解析並建立驗證記錄
// 3. 在單一事務中保存全部記錄
// 4. 提交成功後發布領域事件
// 5. 彙總統計並返回結果
//
// 錯誤處理：
// - 單筆分類失敗 → 該筆為拒絕結果，批次繼續
// - 任一筆保存失敗 → 整個批次回滾，返回錯誤
// - 事件發布失敗 → 不影響已提交的記錄
func (uc *BatchVerifyUseCase) Execute(cmd BatchVerifyCommand) (*BatchVerifyResult, error) {
	// 1. 空批次直接返回零統計
	if len(cmd.IDNumbers) == 0 {
		stats, err := uc.statsService.Summarize(0, 0)
		if err != nil {
			return nil, err
		}
		return &BatchVerifyResult{
			Items:    []BatchVerifyItemResult{},
			PassRate: stats.PassRate().StringFixed(2),
		}, nil
	}

	// 2. 逐筆解析並建立驗證記錄
	records := make([]*verification.VerificationRecord, 0, len(cmd.IDNumbers))
	var passed, rejected int64

	for _, number := range cmd.IDNumbers {
		parsed, parseErr := parseByGeneration(uc.parser, number)

		var record *verification.VerificationRecord
		var err error
		if parseErr == nil {
			record, err = verification.NewPassedVerification(number, parsed)
			passed++
		} else {
			record, err = verification.NewRejectedVerification(number, parseErr)
			rejected++
		}
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	// 3. 在單一事務中保存全部記錄（原子性：全部成功或全部回滾）
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		for _, record := range records {
			if err := uc.verificationRepo.Save(ctx, record); err != nil {
				return fmt.Errorf("failed to save verification record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. 提交成功後發布領域事件
	// 發布失敗不影響已提交的記錄（事件為輔助通知，非事實來源）
	if uc.eventPublisher != nil {
		events := make([]shared.DomainEvent, 0, len(records))
		for _, record := range records {
			events = append(events, record.PullEvents()...)
		}
		_ = uc.eventPublisher.PublishBatch(events)
	}

	// 5. 彙總統計並返回結果
	stats, err := uc.statsService.Summarize(passed, rejected)
	if err != nil {
		return nil, err
	}

	items := make([]BatchVerifyItemResult, 0, len(records))
	for _, record := range records {
		items = append(items, BatchVerifyItemResult{
			VerificationID: record.VerificationID().String(),
			Valid:          record.IsPassed(),
			Generation:     record.Generation().String(),
			MaskedNumber:   record.MaskedNumber(),
			RejectionCode:  string(record.RejectionCode()),
		})
	}

	return &BatchVerifyResult{
		Items:    items,
		Total:    stats.Total(),
		Passed:   stats.Passed(),
		Rejected: stats.Rejected(),
		PassRate: stats.PassRate().StringFixed(2),
	}, nil
}
