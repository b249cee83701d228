package verification

import (
	"strings"
	"time"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
)

// ===========================
// VerificationRecord 聚合根
// ===========================

// SubjectDetails 持證人資訊快照（值對象）
//
// 通過驗證時從解析結果擷取；拒絕的記錄沒有持證人資訊。
// 僅保留解碼出的屬性，絕不保留完整號碼本身
type SubjectDetails struct {
	Sex      idcard.Sex
	Birthday idcard.Birthday
	Region   idcard.Region
}

// maskedPrefixLength 遮罩後保留的前綴長度（行政區劃代碼段）
const maskedPrefixLength = 6

// maskedSuffixLength 遮罩後保留的尾碼長度（順序碼與校驗碼段）
const maskedSuffixLength = 4

// MaskIDNumber 遮罩身份證號碼
//
// 遮罩規則：
// - 保留前6位（行政區劃代碼）與末4位，中段（出生日期段）以 * 取代
// - 長度不足以同時保留前後綴時全部遮罩
//
// 驗證記錄永不保存完整號碼，入庫前必須經過此遮罩
func MaskIDNumber(number string) string {
	if len(number) <= maskedPrefixLength+maskedSuffixLength {
		return strings.Repeat("*", len(number))
	}
	return number[:maskedPrefixLength] +
		strings.Repeat("*", len(number)-maskedPrefixLength-maskedSuffixLength) +
		number[len(number)-maskedSuffixLength:]
}

// VerificationRecord 驗證記錄聚合根
//
// 設計原則：
// 1. 輕量級聚合：一次驗證產生一筆不可變記錄
// 2. 隱私保護：只保存遮罩後的號碼與解碼屬性，不保存原始號碼
// 3. 事件驅動：創建時發布對應的領域事件
//
// 業務不變條件：
// - outcome == passed 時必須有 SubjectDetails，且 rejectionCode 為空
// - outcome == rejected 時必須有 rejectionCode，且沒有 SubjectDetails
type VerificationRecord struct {
	// 聚合根識別符
	verificationID VerificationID

	// 驗證資料
	maskedNumber  string
	generation    idcard.Generation
	outcome       Outcome
	rejectionCode idcard.ErrorCode
	subject       *SubjectDetails

	// 審計字段
	createdAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// ===========================
// 建構函數（工廠方法）
// ===========================

// NewPassedVerification 創建通過的驗證記錄
//
// 參數：
//   number - 原始號碼（僅用於遮罩，不會被保存）
//   parsed - 解析成功的號碼（必填）
//
// 業務規則：
// - 持證人資訊從解析結果擷取
// - 發布 VerificationPassed 事件
func NewPassedVerification(number string, parsed *idcard.ParsedIDNumber) (*VerificationRecord, error) {
	// 驗證必填字段
	if parsed == nil {
		return nil, ErrMissingSubject
	}

	record := &VerificationRecord{
		verificationID: NewVerificationID(),
		maskedNumber:   MaskIDNumber(number),
		generation:     parsed.Generation(),
		outcome:        OutcomePassed,
		subject: &SubjectDetails{
			Sex:      parsed.Sex(),
			Birthday: parsed.Birthday(),
			Region:   parsed.Region(),
		},
		createdAt: time.Now(),
		events:    make([]shared.DomainEvent, 0),
	}

	// 發布領域事件
	record.addEvent(NewVerificationPassedEvent(record.verificationID, record.generation))

	return record, nil
}

// NewRejectedVerification 創建拒絕的驗證記錄
//
// 參數：
//   number - 原始號碼（僅用於遮罩與世代推斷，不會被保存）
//   cause - 拒絕原因（必須為號碼分類錯誤）
//
// 業務規則：
// - 拒絕代碼從分類錯誤中擷取；無法分類的錯誤不構成有效拒絕
// - 世代依號碼長度推斷（長度不合法時為 unknown）
// - 發布 VerificationRejected 事件
func NewRejectedVerification(number string, cause error) (*VerificationRecord, error) {
	// 驗證拒絕原因可分類
	code, ok := idcard.ErrorCodeOf(cause)
	if !ok {
		return nil, ErrUnclassifiedRejection.WithContext("cause", cause.Error())
	}

	record := &VerificationRecord{
		verificationID: NewVerificationID(),
		maskedNumber:   MaskIDNumber(number),
		generation:     idcard.GenerationFromLength(len(number)),
		outcome:        OutcomeRejected,
		rejectionCode:  code,
		createdAt:      time.Now(),
		events:         make([]shared.DomainEvent, 0),
	}

	// 發布領域事件
	record.addEvent(NewVerificationRejectedEvent(record.verificationID, code))

	return record, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// VerificationID 獲取驗證記錄 ID
func (r *VerificationRecord) VerificationID() VerificationID {
	return r.verificationID
}

// MaskedNumber 獲取遮罩後的號碼
func (r *VerificationRecord) MaskedNumber() string {
	return r.maskedNumber
}

// Generation 獲取號碼世代
func (r *VerificationRecord) Generation() idcard.Generation {
	return r.generation
}

// Outcome 獲取驗證結果
func (r *VerificationRecord) Outcome() Outcome {
	return r.outcome
}

// IsPassed 驗證是否通過
func (r *VerificationRecord) IsPassed() bool {
	return r.outcome == OutcomePassed
}

// RejectionCode 獲取拒絕代碼（通過的記錄為空字串）
func (r *VerificationRecord) RejectionCode() idcard.ErrorCode {
	return r.rejectionCode
}

// Subject 獲取持證人資訊快照
//
// 返回：
//   SubjectDetails - 持證人資訊（值拷貝）
//   bool - 是否存在（拒絕的記錄為 false）
func (r *VerificationRecord) Subject() (SubjectDetails, bool) {
	if r.subject == nil {
		return SubjectDetails{}, false
	}
	return *r.subject, true
}

// CreatedAt 獲取創建時間
func (r *VerificationRecord) CreatedAt() time.Time {
	return r.createdAt
}

// ===========================
// 事件管理
// ===========================

// addEvent 添加領域事件到待發布列表（私有方法）
func (r *VerificationRecord) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 使用場景：
// - Repository.Save() 成功後，調用此方法獲取事件並發布
// - 事件發布由 Infrastructure 層的 EventPublisher 處理
//
// 設計原則：
// - Pull 模式（而非 Push）：聚合根不依賴 EventPublisher
// - 只讀取一次：獲取後清空，避免重複發布
func (r *VerificationRecord) PullEvents() []shared.DomainEvent {
	events := r.events
	r.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructVerificationRecord 從持久化存儲重建聚合根
//
// 設計原則：
// - 僅供 Repository 使用
// - 與工廠方法的區別：重建已存在的聚合，不發布事件（事件已發生過）
//
// 重要：即使是從資料庫重建，也必須驗證不變條件，防止損壞資料污染領域層
func ReconstructVerificationRecord(
	verificationID VerificationID,
	maskedNumber string,
	generation idcard.Generation,
	outcome Outcome,
	rejectionCode idcard.ErrorCode,
	subject *SubjectDetails,
	createdAt time.Time,
) (*VerificationRecord, error) {
	// 1. 驗證 ID 有效性
	if verificationID.IsEmpty() {
		return nil, ErrInvalidVerificationID.WithContext(
			"reason", "invalid verification ID in database",
		)
	}

	// 2. 驗證結果值
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome.WithContext("value", string(outcome))
	}

	// 3. 驗證關鍵不變條件：結果與資料組合一致
	if outcome == OutcomePassed {
		if subject == nil {
			return nil, ErrInvariantViolation.WithContext(
				"reason", "passed record without subject details",
			)
		}
		if rejectionCode != "" {
			return nil, ErrInvariantViolation.WithContext(
				"reason", "passed record with rejection code",
				"code", string(rejectionCode),
			)
		}
	} else {
		if rejectionCode == "" {
			return nil, ErrInvariantViolation.WithContext(
				"reason", "rejected record without rejection code",
			)
		}
		if subject != nil {
			return nil, ErrInvariantViolation.WithContext(
				"reason", "rejected record with subject details",
			)
		}
	}

	// 4. 重建聚合（重建時不包含事件）
	return &VerificationRecord{
		verificationID: verificationID,
		maskedNumber:   maskedNumber,
		generation:     generation,
		outcome:        outcome,
		rejectionCode:  rejectionCode,
		subject:        subject,
		createdAt:      createdAt,
		events:         make([]shared.DomainEvent, 0),
	}, nil
}
