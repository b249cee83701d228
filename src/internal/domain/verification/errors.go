package verification

import "strconv"

// ===========================
// Verification Domain 錯誤定義
// ===========================

// ErrorCode Verification Domain 錯誤代碼
type ErrorCode string

// Verification Domain 錯誤代碼常量
const (
	ErrCodeInvalidVerificationID ErrorCode = "INVALID_VERIFICATION_ID"
	ErrCodeInvalidOutcome        ErrorCode = "INVALID_OUTCOME"
	ErrCodeMissingSubject        ErrorCode = "MISSING_SUBJECT"
	ErrCodeUnclassifiedRejection ErrorCode = "UNCLASSIFIED_REJECTION"
	ErrCodeInvariantViolation    ErrorCode = "INVARIANT_VIOLATION"
	ErrCodeInvalidStatsCount     ErrorCode = "INVALID_STATS_COUNT"
)

// DomainError Verification Domain 錯誤結構
//
// 設計原則：
// 1. 不使用 fmt.Errorf 或 errors.New（避免字串錯誤）
// 2. 使用結構化錯誤（ErrorCode + Message + Context）
// 3. 支援錯誤包裝（errors.Is 檢查）
// 4. 提供上下文信息（WithContext 方法）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實作 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}

	// 包含上下文信息
	return e.Message + " (context: " + formatContext(e.Context) + ")"
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	newErr := &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: make(map[string]interface{}),
	}

	// 複製現有上下文
	for k, v := range e.Context {
		newErr.Context[k] = v
	}

	// 添加新上下文
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("WithContext keys must be strings")
		}
		newErr.Context[key] = keyValues[i+1]
	}

	return newErr
}

// Is 實作 errors.Is 比較
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// formatContext 格式化上下文信息
func formatContext(context map[string]interface{}) string {
	if len(context) == 0 {
		return ""
	}

	result := ""
	for k, v := range context {
		if result != "" {
			result += ", "
		}
		result += k + "=" + formatValue(v)
	}
	return result
}

// formatValue 格式化單個值
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return "<value>"
	}
}

// ===========================
// Verification Domain 錯誤實例
// ===========================

var (
	// ErrInvalidVerificationID 驗證記錄 ID 無效
	ErrInvalidVerificationID = &DomainError{
		Code:    ErrCodeInvalidVerificationID,
		Message: "驗證記錄 ID 格式無效",
	}

	// ErrInvalidOutcome 驗證結果值無效
	//
	// 觸發條件：
	// - 從持久層重建時結果字串無法識別
	ErrInvalidOutcome = &DomainError{
		Code:    ErrCodeInvalidOutcome,
		Message: "驗證結果值無效（必須為 passed 或 rejected）",
	}

	// ErrMissingSubject 通過的驗證缺少持證人資訊
	//
	// 觸發條件：
	// - 以 nil 解析結果創建通過記錄
	ErrMissingSubject = &DomainError{
		Code:    ErrCodeMissingSubject,
		Message: "通過的驗證記錄必須包含持證人資訊",
	}

	// ErrUnclassifiedRejection 拒絕原因無法分類
	//
	// 觸發條件：
	// - 以非號碼分類錯誤創建拒絕記錄
	ErrUnclassifiedRejection = &DomainError{
		Code:    ErrCodeUnclassifiedRejection,
		Message: "拒絕原因無法分類（必須為號碼分類錯誤）",
	}

	// ErrInvariantViolation 聚合不變條件違反
	//
	// 觸發條件：
	// - 從持久層重建時資料組合不一致（如通過記錄帶有拒絕代碼）
	ErrInvariantViolation = &DomainError{
		Code:    ErrCodeInvariantViolation,
		Message: "驗證記錄不變條件違反（資料損壞）",
	}

	// ErrInvalidStatsCount 統計數量無效
	//
	// 觸發條件：
	// - 統計服務收到負數計數
	ErrInvalidStatsCount = &DomainError{
		Code:    ErrCodeInvalidStatsCount,
		Message: "統計數量無效（不能為負數）",
	}
)
