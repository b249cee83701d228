package crawler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ===========================
// ParseDivisionTable 公告表格解析
// ===========================

// divisionCodePattern 區劃代碼儲存格形態：恰好6位數字
//
// 公告表偶有統計用的長代碼列與表頭列，頭尾錨定可一併排除
var divisionCodePattern = regexp.MustCompile(`^\d{6}$`)

// ParseDivisionTable 從公告頁面擷取「代碼 → 名稱」對照表
//
// 公告頁為整頁表格排版，逐列掃描：
// - 收集該列所有非空白儲存格文字
// - 首格必須為6位數字代碼，否則視為表頭或裝飾列而跳過
// - 次格為區劃名稱
func ParseDivisionTable(page string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse division page: %w", err)
	}

	divisions := make(map[string]string)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := make([]string, 0, 2)
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			if text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) < 2 || !divisionCodePattern.MatchString(cells[0]) {
			return
		}
		divisions[cells[0]] = cells[1]
	})

	// 一列都沒抓到通常是頁面改版，寧可失敗也不產出空年度
	if len(divisions) == 0 {
		return nil, fmt.Errorf("parse division page: no division rows found")
	}
	return divisions, nil
}
