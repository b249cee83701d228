package idcard

import (
	"regexp"
)

// ===========================
// RegionCode Value Object
// ===========================

// regionCodePattern 行政區劃代碼正則表達式（GB/T 2260，6位數字）
var regionCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// RegionCode 行政區劃代碼值對象（身份證號碼前6位）
//
// 結構（GB/T 2260）：
// - 第1-2位：省級（省、自治區、直轄市）
// - 第3-4位：地級（市、地區、自治州）
// - 第5-6位：縣級（縣、區、縣級市）
//
// 業務規則：
// - 代碼本身不影響號碼有效性，僅作為區劃名稱查詢的鍵
// - 各級查詢鍵以零填充到6位（如 "42" 省級 → "420000"）
type RegionCode struct {
	value string
}

// NewRegionCode 創建新的行政區劃代碼值對象（Checked Constructor）
//
// 驗證失敗返回 ErrInvalidRegionCode
func NewRegionCode(value string) (RegionCode, error) {
	if !regionCodePattern.MatchString(value) {
		return RegionCode{}, ErrInvalidRegionCode.WithContext("code", value)
	}
	return RegionCode{value: value}, nil
}

// regionCodeFromDigits 從已驗證的數字字元創建行政區劃代碼
//
// 僅供解析流程內部使用：前6位字元已在解析時驗證為數字
func regionCodeFromDigits(digits string) RegionCode {
	return RegionCode{value: digits}
}

// String 返回完整6位代碼字串
func (c RegionCode) String() string {
	return c.value
}

// ProvinceKey 省級查詢鍵（前2位 + "0000"）
func (c RegionCode) ProvinceKey() string {
	return c.value[:2] + "0000"
}

// CityKey 地級查詢鍵（前4位 + "00"）
func (c RegionCode) CityKey() string {
	return c.value[:4] + "00"
}

// DistrictKey 縣級查詢鍵（完整6位）
func (c RegionCode) DistrictKey() string {
	return c.value
}

// IsProvinceLevel 是否為省級代碼（XX0000 形式）
//
// 省級代碼只對應單一區劃：解析時僅查詢省級名稱
func (c RegionCode) IsProvinceLevel() bool {
	return c.value == c.ProvinceKey()
}

// Equals 比較兩個行政區劃代碼是否相等
func (c RegionCode) Equals(other RegionCode) bool {
	return c.value == other.value
}

// IsZero 檢查是否為零值
func (c RegionCode) IsZero() bool {
	return c.value == ""
}

// ===========================
// Region Value Object
// ===========================

// Region 行政區劃名稱（依年度區劃表解析的結果）
//
// 每一級名稱皆為可選：空字串表示該級在對應年度的區劃表中查無代碼。
// 區劃名稱是純附加資訊，任何一級缺失都不影響號碼的有效性。
type Region struct {
	province string
	city     string
	district string
}

// NewRegion 創建行政區劃名稱值對象
//
// 任一參數可為空字串（表示該級缺失）
func NewRegion(province, city, district string) Region {
	return Region{province: province, city: city, district: district}
}

// Province 省級名稱（空字串表示缺失）
func (r Region) Province() string {
	return r.province
}

// City 地級名稱（空字串表示缺失）
func (r Region) City() string {
	return r.city
}

// District 縣級名稱（空字串表示缺失）
func (r Region) District() string {
	return r.district
}

// HasProvince 省級名稱是否存在
func (r Region) HasProvince() bool {
	return r.province != ""
}

// HasCity 地級名稱是否存在
func (r Region) HasCity() bool {
	return r.city != ""
}

// HasDistrict 縣級名稱是否存在
func (r Region) HasDistrict() bool {
	return r.district != ""
}

// IsUnknown 是否完全未解析（三級皆缺失）
func (r Region) IsUnknown() bool {
	return r == Region{}
}

// Equals 比較兩個行政區劃名稱是否相等
func (r Region) Equals(other Region) bool {
	return r == other
}
