package verification

import (
	"fmt"
	"time"

	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
)

// GetVerificationQuery 查詢驗證記錄的查詢
type GetVerificationQuery struct {
	VerificationID string
}

// GetVerificationResult 查詢驗證記錄的結果
type GetVerificationResult struct {
	VerificationID string
	Valid          bool
	Generation     string
	MaskedNumber   string
	RejectionCode  string
	Sex            string
	Birthday       string
	Province       string
	City           string
	District       string
	CreatedAt      time.Time
}

// GetVerificationUseCase 查詢驗證記錄 Use Case
type GetVerificationUseCase struct {
	verificationRepo verification.VerificationRepository
}

// NewGetVerificationUseCase 創建 Use Case 實例
func NewGetVerificationUseCase(repo verification.VerificationRepository) *GetVerificationUseCase {
	return &GetVerificationUseCase{
		verificationRepo: repo,
	}
}

// Execute 執行查詢驗證記錄
//
// 執行流程：
// 1. 驗證並轉換 VerificationID
// 2. 查詢驗證記錄
// 3. 返回結果
//
// 錯誤處理：
// - ErrInvalidVerificationID: VerificationID 格式無效
// - ErrVerificationNotFound: 記錄不存在
// - 其他錯誤：添加上下文後返回
func (uc *GetVerificationUseCase) Execute(query GetVerificationQuery) (*GetVerificationResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
//
// 使用場景：
// - 在已有事務中查詢記錄（與其他操作組合）
// - 獨立查詢時可傳入 nil（不需要事務）
//
// 參數：
// - ctx: 事務上下文（可為 nil）
// - query: 查詢參數
//
// 返回：
// - result: 查詢結果
// - error: 錯誤（如果有）
func (uc *GetVerificationUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetVerificationQuery,
) (*GetVerificationResult, error) {
	// 1. 驗證並轉換 VerificationID
	verificationID, err := verification.VerificationIDFromString(query.VerificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse verification ID: %w", err)
	}

	// 2. 查詢驗證記錄
	record, err := uc.verificationRepo.FindByID(ctx, verificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find verification record: %w", err)
	}

	// 3. 返回結果
	result := &GetVerificationResult{
		VerificationID: record.VerificationID().String(),
		Valid:          record.IsPassed(),
		Generation:     record.Generation().String(),
		MaskedNumber:   record.MaskedNumber(),
		RejectionCode:  string(record.RejectionCode()),
		CreatedAt:      record.CreatedAt(),
	}

	if subject, ok := record.Subject(); ok {
		result.Sex = subject.Sex.String()
		result.Birthday = subject.Birthday.String()
		result.Province = subject.Region.Province()
		result.City = subject.Region.City()
		result.District = subject.Region.District()
	}

	return result, nil
}
