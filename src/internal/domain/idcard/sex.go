package idcard

// ===========================
// Sex Value Object
// ===========================

// Sex 持證人性別
//
// 業務規則（GB 11643-1999）：
// - 性別由順序碼末位數字的奇偶決定
// - 奇數為男性，偶數為女性
// - 二代證（18位）：順序碼末位是第17個字元
// - 一代證（15位）：順序碼末位是第15個字元
type Sex int

const (
	// SexFemale 女性（順序碼末位為偶數）
	SexFemale Sex = iota
	// SexMale 男性（順序碼末位為奇數）
	SexMale
)

// sexFromSequenceDigit 從順序碼末位數字推導性別
//
// digit 必須是 ASCII 數字字元（解析流程已完成字元驗證）
func sexFromSequenceDigit(digit byte) Sex {
	if (digit-'0')%2 == 1 {
		return SexMale
	}
	return SexFemale
}

// String 返回性別的字串表示
func (s Sex) String() string {
	if s == SexMale {
		return "male"
	}
	return "female"
}

// SexFromString 從字串解析性別
//
// 使用場景：從持久層重建領域對象
func SexFromString(value string) (Sex, error) {
	switch value {
	case "male":
		return SexMale, nil
	case "female":
		return SexFemale, nil
	default:
		return SexFemale, ErrInvalidSex.WithContext("value", value)
	}
}
