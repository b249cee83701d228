package idcard

// ===========================
// Generation Value Object
// ===========================

// Generation 身份證世代
//
// 業務規則：
// - 一代證：15位，無校驗碼，出生年份僅兩位
// - 二代證：18位，GB 11643-1999，含校驗碼與四位年份
// - 世代由號碼長度決定
type Generation int

const (
	// GenerationUnknown 未知世代（長度既非15也非18）
	GenerationUnknown Generation = iota
	// GenerationFirst 一代證（15位）
	GenerationFirst
	// GenerationSecond 二代證（18位）
	GenerationSecond
)

// GenerationFromLength 依號碼長度判斷目標世代
func GenerationFromLength(length int) Generation {
	switch length {
	case FirstGenLength:
		return GenerationFirst
	case SecondGenLength:
		return GenerationSecond
	default:
		return GenerationUnknown
	}
}

// String 返回世代的字串表示
func (g Generation) String() string {
	switch g {
	case GenerationFirst:
		return "first"
	case GenerationSecond:
		return "second"
	default:
		return "unknown"
	}
}

// GenerationFromString 從字串解析世代
//
// 使用場景：從持久層重建領域對象
func GenerationFromString(value string) (Generation, error) {
	switch value {
	case "first":
		return GenerationFirst, nil
	case "second":
		return GenerationSecond, nil
	case "unknown":
		return GenerationUnknown, nil
	default:
		return GenerationUnknown, ErrInvalidGeneration.WithContext("value", value)
	}
}
