package verification

import (
	"fmt"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
)

// ===========================
// UC-001: VerifyIDNumber Use Case
// ===========================

// VerifyIDNumberCommand 驗證身份證號碼指令（Input DTO）
//
// 設計原則：
// - 只包含外部輸入數據（不包含內部邏輯）
// - 使用原始類型（string），由 Use Case 轉換為 Value Object
// - 不依賴 Domain Layer（避免循環依賴）
type VerifyIDNumberCommand struct {
	IDNumber string // 身份證號碼（一代15位或二代18位）
}

// VerifyIDNumberResult 驗證身份證號碼結果（Output DTO）
//
// 設計原則：
// - 只包含外部需要的數據
// - 使用原始類型（避免暴露 Domain 對象）
// - 絕不回傳原始號碼（僅遮罩後的號碼）
type VerifyIDNumberResult struct {
	VerificationID string // 驗證記錄 ID (UUID)
	Valid          bool   // 號碼是否通過驗證
	Generation     string // 號碼世代（"first" / "second" / "unknown"）
	MaskedNumber   string // 遮罩後的號碼
	RejectionCode  string // 拒絕代碼（通過時為空字串）

	// 持證人資訊（僅通過時有值）
	Sex      string // "male" / "female"
	Birthday string // "YYYY-MM-DD"
	Province string // 省級名稱（查無時為空字串）
	City     string // 地級名稱（查無時為空字串）
	District string // 縣級名稱（查無時為空字串）
}

// VerifyIDNumberUseCase 驗證身份證號碼 Use Case 接口
//
// 設計原則：
// - 定義在 Application Layer（業務流程編排）
// - 依賴 Domain Layer 的 Repository 接口（依賴反轉）
// - 使用 TransactionManager 保證原子性
//
// 業務規則：
// 1. 依號碼長度選擇世代：15位走一代解析，其餘走二代解析
// 2. 分類失敗（長度、字元、校驗碼、出生日期）是業務結果，不是使用案例錯誤
// 3. 無論通過或拒絕，每次驗證都留下一筆審計記錄
// 4. 記錄提交成功後發布對應的領域事件
//
// 使用場景：
// - KYC 流程中的單筆號碼驗證
// - Admin Portal 手動查核
type VerifyIDNumberUseCase interface {
	Execute(cmd VerifyIDNumberCommand) (*VerifyIDNumberResult, error)
}

// ===========================
// VerifyIDNumberUseCaseImpl
// ===========================

// VerifyIDNumberUseCaseImpl 驗證身份證號碼 Use Case 實作
//
// 設計原則：
// - 實作 VerifyIDNumberUseCase 接口
// - 依賴注入 Parser、VerificationRepository、TransactionManager 與 EventPublisher
// - 業務流程編排（orchestration），不包含業務邏輯
// - 驗證邏輯在 Domain Layer（idcard.Parser 與 VerificationRecord 聚合）
//
// 職責：
// 1. 依長度路由到對應世代的解析流程
// 2. 將解析結果轉為驗證記錄（通過或拒絕）
// 3. 協調事務（使用 TransactionManager）
// 4. 提交後發布領域事件
type VerifyIDNumberUseCaseImpl struct {
	parser           *idcard.Parser
	verificationRepo verification.VerificationRepository
	txManager        shared.TransactionManager
	eventPublisher   shared.EventPublisher
}

// NewVerifyIDNumberUseCase 創建 VerifyIDNumberUseCase 實例
//
// 參數：
// - parser: 身份證號碼解析器
// - verificationRepo: 驗證記錄倉儲接口
// - txManager: 事務管理器
// - eventPublisher: 事件發布器（可為 nil，此時跳過事件發布）
//
// 返回：
// - VerifyIDNumberUseCase: Use Case 接口實例
func NewVerifyIDNumberUseCase(
	parser *idcard.Parser,
	verificationRepo verification.VerificationRepository,
	txManager shared.TransactionManager,
	eventPublisher shared.EventPublisher,
) VerifyIDNumberUseCase {
	return &VerifyIDNumberUseCaseImpl{
		parser:           parser,
		verificationRepo: verificationRepo,
		txManager:        txManager,
		eventPublisher:   eventPublisher,
	}
}

// Execute 執行驗證身份證號碼 Use Case
//
// 業務流程：
// 1. 依號碼長度選擇解析流程並解析
// 2. 將解析結果轉為驗證記錄：
//    - 解析成功 → 通過記錄（含持證人資訊快照）
//    - 分類失敗 → 拒絕記錄（含拒絕代碼）
// 3. 在事務中保存記錄
// 4. 提交成功後發布領域事件
// 5. 返回結果
//
// 錯誤處理：
// - 分類失敗 → 正常返回（Valid=false + RejectionCode）
// - 資料庫錯誤 → 返回錯誤（記錄未保存，不返回結果）
// - 事件發布失敗 → 不影響已提交的記錄（事件為輔助通知）
func (uc *VerifyIDNumberUseCaseImpl) Execute(cmd VerifyIDNumberCommand) (*VerifyIDNumberResult, error) {
	// Step 1: 解析號碼（分類失敗是業務結果，不中斷流程）
	parsed, parseErr := parseByGeneration(uc.parser, cmd.IDNumber)

	// Step 2: 將解析結果轉為驗證記錄
	var record *verification.VerificationRecord
	var err error
	if parseErr == nil {
		record, err = verification.NewPassedVerification(cmd.IDNumber, parsed)
	} else {
		record, err = verification.NewRejectedVerification(cmd.IDNumber, parseErr)
	}
	if err != nil {
		return nil, err
	}

	// Step 3: 在事務中保存記錄
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.verificationRepo.Save(ctx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save verification record: %w", err)
	}

	// Step 4: 提交成功後發布領域事件
	// 發布失敗不影響已提交的記錄（事件為輔助通知，非事實來源）
	if uc.eventPublisher != nil {
		_ = uc.eventPublisher.PublishBatch(record.PullEvents())
	}

	// Step 5: 返回結果（DTO 轉換）
	return verifyResultFromRecord(record), nil
}

// parseByGeneration 依號碼長度選擇對應世代的解析流程
//
// 路由規則：
// - 15位 → 一代解析
// - 其餘長度 → 二代解析（長度不合法的輸入由二代流程以 ErrInvalidLength 拒絕）
func parseByGeneration(parser *idcard.Parser, number string) (*idcard.ParsedIDNumber, error) {
	if len(number) == idcard.FirstGenLength {
		return parser.ParseFirstGen(number)
	}
	return parser.ParseSecondGen(number)
}

// verifyResultFromRecord 將驗證記錄轉換為結果 DTO
func verifyResultFromRecord(record *verification.VerificationRecord) *VerifyIDNumberResult {
	result := &VerifyIDNumberResult{
		VerificationID: record.VerificationID().String(),
		Valid:          record.IsPassed(),
		Generation:     record.Generation().String(),
		MaskedNumber:   record.MaskedNumber(),
		RejectionCode:  string(record.RejectionCode()),
	}

	// 持證人資訊（僅通過記錄有值）
	if subject, ok := record.Subject(); ok {
		result.Sex = subject.Sex.String()
		result.Birthday = subject.Birthday.String()
		result.Province = subject.Region.Province()
		result.City = subject.Region.City()
		result.District = subject.Region.District()
	}

	return result
}
