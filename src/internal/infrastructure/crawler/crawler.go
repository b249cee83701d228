package crawler

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jackyeh168/resident_id/src/internal/infrastructure/regiondata"
)

// ===========================
// Crawler 年度快照重建
// ===========================

// Crawler 依配置抓取歷年公告並重建區劃快照
//
// 屬資料集產製工具：產出的快照經人工核對後內嵌進 regiondata，
// 執行期驗證不依賴本套件
type Crawler struct {
	config *Config
	client *Client
	logger *zap.Logger
}

// NewCrawler 創建快照重建工具
func NewCrawler(config *Config, client *Client, logger *zap.Logger) *Crawler {
	return &Crawler{
		config: config,
		client: client,
		logger: logger,
	}
}

// BuildSnapshot 併發抓取所有配置年度並組裝快照
//
// 任一年度抓取或解析失敗即中止整次重建：
// 缺了年度的快照會讓歷史查詢靜默退化成「查無此區劃」，寧可整批重來
func (c *Crawler) BuildSnapshot(ctx context.Context) (regiondata.Snapshot, error) {
	snapshot := make(regiondata.Snapshot, len(c.config.Sources))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.config.Concurrency)

	for year, url := range c.config.Sources {
		year, url := year, url // per-iteration copies; required for correct capture on Go <1.22
		group.Go(func() error {
			page, err := c.client.FetchPage(ctx, year, url)
			if err != nil {
				return err
			}

			divisions, err := ParseDivisionTable(page)
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}

			c.logger.Info("Division table parsed",
				zap.Int("year", year),
				zap.Int("division_count", len(divisions)),
			)

			mu.Lock()
			snapshot[year] = divisions
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// WriteSnapshot 將快照寫入指定路徑（region.json 的產製出口）
func (c *Crawler) WriteSnapshot(snapshot regiondata.Snapshot, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}

	if err := snapshot.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}

	c.logger.Info("Region snapshot written",
		zap.String("path", path),
		zap.Int("year_count", len(snapshot)),
	)
	return nil
}
