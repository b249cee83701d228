package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jackyeh168/resident_id/src/internal/infrastructure/regiondata"
)

func sampleSnapshot() regiondata.Snapshot {
	return regiondata.Snapshot{
		2019: {
			"110101": "东城区",
			"110000": "北京市",
		},
		2020: {
			"420111": "洪山区",
		},
	}
}

// Test 1: 一個年度一張工作表（年度升序）
func TestGenerateSnapshotWorkbook_MultipleYears_SheetPerYear(t *testing.T) {
	// Act
	data, err := GenerateSnapshotWorkbook(sampleSnapshot())

	// Assert
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{"2019", "2020"}, workbook.GetSheetList())
}

// Test 2: 工作表內容：表頭 + 代碼升序
func TestGenerateSnapshotWorkbook_SheetRows_HeaderThenSortedCodes(t *testing.T) {
	// Arrange
	data, err := GenerateSnapshotWorkbook(sampleSnapshot())
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	// Act
	rows, err := workbook.GetRows("2019")

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"行政区划代码", "单位名称"}, rows[0])
	assert.Equal(t, []string{"110000", "北京市"}, rows[1])
	assert.Equal(t, []string{"110101", "东城区"}, rows[2])
}

// Test 3: 代碼以字串寫入
func TestGenerateSnapshotWorkbook_CodeCell_KeepsStringForm(t *testing.T) {
	// Arrange
	data, err := GenerateSnapshotWorkbook(sampleSnapshot())
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	// Act
	value, err := workbook.GetCellValue("2020", "A2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "420111", value)
}

// Test 4: 空快照
func TestGenerateSnapshotWorkbook_EmptySnapshot_ReturnsError(t *testing.T) {
	// Act
	data, err := GenerateSnapshotWorkbook(regiondata.Snapshot{})

	// Assert
	assert.Nil(t, data)
	assert.ErrorContains(t, err, "empty snapshot")
}

// Test 5: 活頁簿寫檔後可重新開啟
func TestWriteSnapshotWorkbook_ExistingDirectory_FileReopens(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "region.xlsx")

	// Act
	err := WriteSnapshotWorkbook(sampleSnapshot(), path)

	// Assert
	require.NoError(t, err)
	workbook, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer workbook.Close()
	assert.Equal(t, []string{"2019", "2020"}, workbook.GetSheetList())
}

// Test 6: 寫入路徑不存在
func TestWriteSnapshotWorkbook_BadPath_ReturnsError(t *testing.T) {
	// Act
	err := WriteSnapshotWorkbook(sampleSnapshot(), filepath.Join(t.TempDir(), "absent", "region.xlsx"))

	// Assert
	assert.ErrorContains(t, err, "write snapshot workbook")
}
