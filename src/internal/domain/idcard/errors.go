package idcard

import (
	"errors"
	"strconv"
)

// ===========================
// IDCard Domain 錯誤定義
// ===========================

// ErrorCode IDCard Domain 錯誤代碼
type ErrorCode string

// IDCard Domain 錯誤代碼常量
//
// 分類代碼是開放集合：未來版本可能新增代碼，
// 呼叫端應使用 errors.Is 檢查已知錯誤，並為未知代碼保留 fallback 分支
const (
	ErrCodeInvalidLength     ErrorCode = "INVALID_LENGTH"
	ErrCodeInvalidCharacter  ErrorCode = "INVALID_CHARACTER"
	ErrCodeWrongCheckNumber  ErrorCode = "WRONG_CHECK_NUMBER"
	ErrCodeInvalidBirthday   ErrorCode = "INVALID_BIRTHDAY"
	ErrCodeInvalidRegionCode ErrorCode = "INVALID_REGION_CODE"
	ErrCodeInvalidGeneration ErrorCode = "INVALID_GENERATION"
	ErrCodeInvalidSex        ErrorCode = "INVALID_SEX"
)

// DomainError IDCard Domain 錯誤結構
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

// WithContext 添加上下文信息
//
// 使用範例：
//   return ErrInvalidLength.WithContext("length", len(number), "expected", SecondGenLength)
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
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

// ErrorCodeOf 提取錯誤的分類代碼
//
// 使用場景：將解析失敗原因轉換為可記錄、可統計的代碼
// （如驗證審計記錄的 rejection code）
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, true
	}
	return "", false
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
	default:
		return "<value>"
	}
}

// ===========================
// IDCard Domain 錯誤實例
// ===========================

var (
	// ErrInvalidLength 號碼長度無效
	//
	// 觸發條件：
	// - 二代證號碼不是18個字元
	// - 一代證號碼不是15個字元
	ErrInvalidLength = &DomainError{
		Code:    ErrCodeInvalidLength,
		Message: "身份證號碼長度無效（一代證為15位，二代證為18位）",
	}

	// ErrInvalidCharacter 號碼包含無效字元
	//
	// 觸發條件：
	// - 二代證：前17位出現非數字，或末位不是數字也不是大寫 X
	// - 一代證：任一位出現非數字
	//
	// 業務規則：
	// - 小寫 x 不被接受（GB 11643-1999 規定校驗碼為大寫）
	ErrInvalidCharacter = &DomainError{
		Code:    ErrCodeInvalidCharacter,
		Message: "身份證號碼包含無效字元（僅允許數字，二代證末位可為大寫X）",
	}

	// ErrWrongCheckNumber 校驗碼錯誤
	//
	// 觸發條件：
	// - 18位號碼未通過 GB 11643-1999 加權模11校驗
	ErrWrongCheckNumber = &DomainError{
		Code:    ErrCodeWrongCheckNumber,
		Message: "校驗碼錯誤（不符合 GB 11643-1999 加權模11規則）",
	}

	// ErrInvalidBirthday 出生日期無效
	//
	// 觸發條件：
	// - 年份超出合理範圍（BirthYearLowerBound 與 BirthYearUpperBound 之間，不含邊界）
	// - 日期在公曆中不存在（如 2001-02-29、06-31）
	ErrInvalidBirthday = &DomainError{
		Code:    ErrCodeInvalidBirthday,
		Message: "出生日期無效（必須為合理範圍內真實存在的公曆日期）",
	}

	// ErrInvalidRegionCode 行政區劃代碼格式無效
	//
	// 觸發條件：
	// - 直接構造 RegionCode 時傳入非6位數字字串
	//
	// 注意：號碼解析流程不會觸發此錯誤（前6位字元已在解析時驗證）
	ErrInvalidRegionCode = &DomainError{
		Code:    ErrCodeInvalidRegionCode,
		Message: "行政區劃代碼格式無效（必須為6位數字）",
	}

	// ErrInvalidGeneration 身份證世代值無效
	//
	// 觸發條件：
	// - 從持久層重建時世代字串無法識別
	ErrInvalidGeneration = &DomainError{
		Code:    ErrCodeInvalidGeneration,
		Message: "身份證世代值無效",
	}

	// ErrInvalidSex 性別值無效
	//
	// 觸發條件：
	// - 從持久層重建時性別字串無法識別
	ErrInvalidSex = &DomainError{
		Code:    ErrCodeInvalidSex,
		Message: "性別值無效",
	}
)
