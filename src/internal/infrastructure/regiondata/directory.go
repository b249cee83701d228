package regiondata

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

// ===========================
// Directory 內嵌區劃目錄
// ===========================

// embeddedSnapshot 隨二進位檔內嵌的年度區劃快照（1980-2023）
//
//go:embed region.json
var embeddedSnapshot []byte

// Directory 以年度快照實作 idcard.RegionDirectory
//
// 不可變對象：創建後可被任意多個 goroutine 併發查詢
type Directory struct {
	snapshot Snapshot
}

// NewDirectory 以指定快照創建區劃目錄
//
// 使用場景：
// - 測試注入自訂快照
// - crawler 重建後的新快照驗證
func NewDirectory(snapshot Snapshot) *Directory {
	return &Directory{snapshot: snapshot}
}

// LookupDivision 實作 idcard.RegionDirectory
//
// 年度或代碼不存在時返回 ok == false
func (d *Directory) LookupDivision(year int, code string) (string, bool) {
	name, ok := d.snapshot[year][code]
	return name, ok
}

// Years 返回目錄涵蓋的年度（升序）
func (d *Directory) Years() []int {
	return d.snapshot.Years()
}

var (
	defaultDirectory *Directory
	defaultOnce      sync.Once
)

// Default 返回內嵌快照的共享目錄（惰性初始化，初始化後不再變動）
//
// 內嵌資料損壞屬於建置產物錯誤，無法在執行期恢復，直接 panic
func Default() *Directory {
	defaultOnce.Do(func() {
		snapshot, err := ParseSnapshot(bytes.NewReader(embeddedSnapshot))
		if err != nil {
			panic(fmt.Sprintf("regiondata: embedded snapshot corrupted: %v", err))
		}
		defaultDirectory = NewDirectory(snapshot)
	})
	return defaultDirectory
}
