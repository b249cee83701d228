package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jackyeh168/resident_id/src/internal/infrastructure/regiondata"
)

// ===========================
// 快照核對活頁簿
// ===========================

// workbookHeader 工作表表頭，沿用公告表的欄位名稱
var workbookHeader = []string{"行政区划代码", "单位名称"}

// GenerateSnapshotWorkbook 生成快照核對活頁簿
//
// 一個年度一張工作表（年度升序），代碼升序排列，
// 供人工與民政部公告逐年比對後再內嵌進 regiondata
func GenerateSnapshotWorkbook(snapshot regiondata.Snapshot) ([]byte, error) {
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("generate snapshot workbook: empty snapshot")
	}

	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for _, year := range snapshot.Years() {
		sheetName := strconv.Itoa(year)
		if _, err := f.NewSheet(sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", sheetName, err)
		}
		if err := writeDivisionSheet(f, sheetName, headerStyle, snapshot.Divisions(year)); err != nil {
			f.Close()
			return nil, err
		}
	}

	// 刪除預設的 Sheet1，活頁簿只留年度工作表
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	firstSheet, err := f.GetSheetIndex(strconv.Itoa(snapshot.Years()[0]))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("locate first sheet: %w", err)
	}
	f.SetActiveSheet(firstSheet)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSnapshotWorkbook 生成活頁簿並寫入指定路徑
func WriteSnapshotWorkbook(snapshot regiondata.Snapshot, path string) error {
	data, err := GenerateSnapshotWorkbook(snapshot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot workbook: %w", err)
	}
	return nil
}

// writeDivisionSheet 寫入單一年度的代碼對照表
func writeDivisionSheet(f *excelize.File, sheetName string, headerStyle int, divisions map[string]string) error {
	for col, header := range workbookHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set header style: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 15); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 30); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	// 代碼以字串寫入，維持6位形態
	codes := make([]string, 0, len(divisions))
	for code := range divisions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for rowIdx, code := range codes {
		row := rowIdx + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), code); err != nil {
			return fmt.Errorf("set code cell at row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), divisions[code]); err != nil {
			return fmt.Errorf("set name cell at row %d: %w", row, err)
		}
	}

	// 凍結表頭列
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}
	return nil
}
