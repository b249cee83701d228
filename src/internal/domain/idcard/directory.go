package idcard

// ===========================
// RegionDirectory 區劃目錄介面
// ===========================

// RegionDirectory 年度行政區劃目錄查詢介面
//
// 設計原則：介面定義在 Domain Layer（使用者），由 Infrastructure 實作
// （嵌入式資料集、資料庫、遠端目錄服務皆可）
//
// 查詢語義：
// - 區劃表按年度發布，year 取號碼中的出生年份
// - code 為零填充後的6位查詢鍵（如 "420000"、"420100"、"420111"）
// - 目錄中不存在對應年度或代碼時返回 ok == false
type RegionDirectory interface {
	LookupDivision(year int, code string) (name string, ok bool)
}

// ResolveRegion 解析行政區劃三級名稱
//
// 解析規則：
// 1. dir 為 nil 時跳過解析（三級全部缺失）
// 2. 省級代碼（XX0000 形式）：僅查詢省級，地級與縣級必定缺失
// 3. 一般代碼：三級各自獨立查詢，任何一級缺失不影響其他級
// 4. 目錄中無對應年度時，三級查詢全部落空
//
// 區劃解析永不失敗：查無對應僅代表名稱缺失，不構成錯誤
func ResolveRegion(dir RegionDirectory, code RegionCode, year int) Region {
	if dir == nil {
		return Region{}
	}

	if code.IsProvinceLevel() {
		province, _ := dir.LookupDivision(year, code.ProvinceKey())
		return Region{province: province}
	}

	province, _ := dir.LookupDivision(year, code.ProvinceKey())
	city, _ := dir.LookupDivision(year, code.CityKey())
	district, _ := dir.LookupDivision(year, code.DistrictKey())
	return Region{province: province, city: city, district: district}
}
