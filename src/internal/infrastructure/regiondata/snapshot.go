package regiondata

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
)

// ===========================
// Snapshot 年度區劃快照
// ===========================

// Snapshot 年度行政區劃快照（年度 → 代碼 → 名稱）
//
// 資料來源：民政部歷年《中华人民共和国行政区划代码》公告表，
// 由 crawler 抓取彙整後以 JSON 保存
type Snapshot map[int]map[string]string

// 快照年度的合理範圍：區劃代碼標準自1980年代施行，
// 範圍外的年度視為資料損壞
const (
	MinYear = 1900
	MaxYear = 2100
)

// ParseSnapshot 從 JSON 讀取並驗證年度區劃快照
//
// 驗證規則：
// - 年度必須在合理範圍內
// - 代碼必須為6位數字（與 idcard.RegionCode 同一套格式規則）
// - 名稱不能為空（空名稱會讓「查無此級」與「名稱為空」無法區分）
func ParseSnapshot(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode region snapshot: %w", err)
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Validate 檢查快照內容完整性
//
// ParseSnapshot 讀入時自動檢查；crawler 重建快照後也以此把關
func (s Snapshot) Validate() error {
	for year, divisions := range s {
		if year < MinYear || year > MaxYear {
			return fmt.Errorf("region snapshot: year %d out of range", year)
		}
		for code, name := range divisions {
			if _, err := idcard.NewRegionCode(code); err != nil {
				return fmt.Errorf("region snapshot: year %d: invalid code %q: %w", year, code, err)
			}
			if name == "" {
				return fmt.Errorf("region snapshot: year %d: empty name for code %s", year, code)
			}
		}
	}
	return nil
}

// Years 返回快照包含的年度（升序）
func (s Snapshot) Years() []int {
	years := make([]int, 0, len(s))
	for year := range s {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Divisions 返回指定年度的區劃表（年度不存在時為 nil）
func (s Snapshot) Divisions(year int) map[string]string {
	return s[year]
}

// WriteTo 以穩定排序的 JSON 寫出快照
//
// 使用場景：crawler 重建資料集後回寫 region.json
func (s Snapshot) WriteTo(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	// encoding/json 對 map 鍵排序輸出，毋須額外處理
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encode region snapshot: %w", err)
	}
	return nil
}
