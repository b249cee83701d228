package verification

// ===========================
// Outcome Value Object
// ===========================

// Outcome 驗證結果
//
// 業務規則：
// - passed：號碼通過全部驗證
// - rejected：號碼被任一驗證環節拒絕（拒絕原因見 RejectionCode）
type Outcome string

const (
	// OutcomePassed 驗證通過
	OutcomePassed Outcome = "passed"
	// OutcomeRejected 驗證拒絕
	OutcomeRejected Outcome = "rejected"
)

// IsValid 是否為已知的結果值
func (o Outcome) IsValid() bool {
	return o == OutcomePassed || o == OutcomeRejected
}

// String 返回結果的字串表示
func (o Outcome) String() string {
	return string(o)
}

// OutcomeFromString 從字串解析驗證結果
//
// 使用場景：從持久層重建領域對象
func OutcomeFromString(value string) (Outcome, error) {
	outcome := Outcome(value)
	if !outcome.IsValid() {
		return "", ErrInvalidOutcome.WithContext("value", value)
	}
	return outcome, nil
}
