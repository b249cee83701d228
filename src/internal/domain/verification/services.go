package verification

import (
	"github.com/shopspring/decimal"
)

// ===========================
// VerificationStatsService 領域服務
// ===========================

// VerificationStats 驗證統計結果（值對象）
type VerificationStats struct {
	total    int64
	passed   int64
	rejected int64
	passRate decimal.Decimal
}

// Total 總驗證次數
func (s VerificationStats) Total() int64 {
	return s.total
}

// Passed 通過次數
func (s VerificationStats) Passed() int64 {
	return s.passed
}

// Rejected 拒絕次數
func (s VerificationStats) Rejected() int64 {
	return s.rejected
}

// PassRate 通過率（百分比，保留兩位小數）
func (s VerificationStats) PassRate() decimal.Decimal {
	return s.passRate
}

// VerificationStatsService 驗證統計領域服務
//
// 設計原則：
// 1. Domain Service 封裝不屬於任何單一實體/值對象的業務邏輯
// 2. 無狀態（stateless）- 所有數據通過參數傳入
//
// 為什麼需要 Domain Service：
// - 通過率計算需要精確的十進位除法，不屬於單筆記錄的職責
// - 批次驗證與報表共用同一套統計規則
type VerificationStatsService struct{}

// NewVerificationStatsService 建構函數
// Domain Service 通常是無狀態的，但保留建構函數用於未來擴展
func NewVerificationStatsService() *VerificationStatsService {
	return &VerificationStatsService{}
}

// percentBase 百分比基數
var percentBase = decimal.NewFromInt(100)

// Summarize 彙總通過與拒絕計數
//
// 業務規則：
// - 通過率 = passed × 100 / total，四捨五入保留兩位小數
// - 總數為 0 時通過率為 0（避免除以零）
// - 負數計數視為呼叫錯誤
//
// 使用 decimal 進行精確計算，避免浮點誤差
func (s *VerificationStatsService) Summarize(passed, rejected int64) (VerificationStats, error) {
	// 驗證計數有效性
	if passed < 0 || rejected < 0 {
		return VerificationStats{}, ErrInvalidStatsCount.WithContext(
			"passed", passed,
			"rejected", rejected,
		)
	}

	total := passed + rejected
	stats := VerificationStats{
		total:    total,
		passed:   passed,
		rejected: rejected,
		passRate: decimal.Zero,
	}

	// 總數為 0 時通過率維持 0
	if total > 0 {
		stats.passRate = decimal.NewFromInt(passed).
			Mul(percentBase).
			DivRound(decimal.NewFromInt(total), 2)
	}

	return stats, nil
}
