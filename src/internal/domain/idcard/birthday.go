package idcard

import (
	"fmt"
	"time"
)

// ===========================
// Birthday Value Object
// ===========================

// 出生年份合理範圍邊界（兩端皆不含）
//
// 超出範圍的年份即使日曆上成立，也視為資料錯誤而非真實出生年份
const (
	// BirthYearLowerBound 出生年份下界（不含）
	BirthYearLowerBound = 1800
	// BirthYearUpperBound 出生年份上界（不含）
	BirthYearUpperBound = 2200
)

// Birthday 出生日期值對象
//
// 業務規則：
// 1. 年份必須嚴格介於 BirthYearLowerBound 與 BirthYearUpperBound 之間
// 2. 必須是公曆中真實存在的日期（閏年規則依公曆推算，如 2000-02-29 存在、2001-02-29 不存在）
//
// 設計原則：
// - 不可變性（Immutability）：所有欄位為 unexported
// - 自我驗證（Self-validation）：建構函數強制驗證
// - 值相等（Value Equality）：基於內容比較
type Birthday struct {
	year  int
	month int
	day   int
}

// NewBirthday 創建新的出生日期值對象（Checked Constructor）
//
// 驗證規則：
// 1. BirthYearLowerBound < year < BirthYearUpperBound
// 2. (year, month, day) 是真實存在的公曆日期
//
// 錯誤範例：
// - (1800, 1, 1) → ErrInvalidBirthday（年份在下界上，不含邊界）
// - (2001, 2, 29) → ErrInvalidBirthday（非閏年）
// - (1982, 6, 31) → ErrInvalidBirthday（六月無31日）
func NewBirthday(year, month, day int) (Birthday, error) {
	// 1. 驗證年份範圍
	if year <= BirthYearLowerBound || year >= BirthYearUpperBound {
		return Birthday{}, ErrInvalidBirthday.WithContext(
			"year", year,
			"reason", "year out of range",
		)
	}

	// 2. 驗證日期真實性
	// 利用 time.Date 的正規化行為：不存在的日期會被正規化為相鄰日期
	// （如 2001-02-29 → 2001-03-01），與輸入比對即可偵測
	normalized := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if normalized.Year() != year || normalized.Month() != time.Month(month) || normalized.Day() != day {
		return Birthday{}, ErrInvalidBirthday.WithContext(
			"year", year,
			"month", month,
			"day", day,
			"reason", "not a real calendar date",
		)
	}

	// 3. 創建值對象
	return Birthday{year: year, month: month, day: day}, nil
}

// Year 出生年份
func (b Birthday) Year() int {
	return b.year
}

// Month 出生月份（1-12）
func (b Birthday) Month() int {
	return b.month
}

// Day 出生日（1-31）
func (b Birthday) Day() int {
	return b.day
}

// String 返回 ISO 8601 日期格式（YYYY-MM-DD）
func (b Birthday) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.year, b.month, b.day)
}

// Equals 比較兩個出生日期是否相等
func (b Birthday) Equals(other Birthday) bool {
	return b == other
}

// IsZero 檢查是否為零值
//
// 使用場景：
// - 驗證未通過的記錄沒有出生日期
func (b Birthday) IsZero() bool {
	return b == Birthday{}
}
