package crawler

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// ===========================
// Client 公告頁面抓取
// ===========================

// Client 民政部公告頁面 HTTP 客戶端
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient 創建公告頁面客戶端
//
// 逾時與重試次數由配置決定，重試間隔遞增
func NewClient(config *Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(time.Duration(config.TimeoutSeconds) * time.Second).
		SetRetryCount(config.RetryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchPage 抓取指定年度的公告頁面，返回 UTF-8 文本
func (c *Client) FetchPage(ctx context.Context, year int, url string) (string, error) {
	c.logger.Info("Fetching division page",
		zap.Int("year", year),
		zap.String("url", url),
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		c.logger.Error("Division page request failed",
			zap.Int("year", year),
			zap.Error(err),
		)
		return "", fmt.Errorf("fetch division page for %d: %w", year, err)
	}

	if resp.IsError() {
		c.logger.Error("Division page returned error status",
			zap.Int("year", year),
			zap.Int("status_code", resp.StatusCode()),
		)
		return "", fmt.Errorf("fetch division page for %d: unexpected status %d", year, resp.StatusCode())
	}

	page, err := decodePage(resp.Body())
	if err != nil {
		return "", fmt.Errorf("decode division page for %d: %w", year, err)
	}
	return page, nil
}

// decodePage 將頁面位元組轉為 UTF-8 字串
//
// 民政部歷年公告頁編碼不一：近年頁面為 UTF-8，早年頁面為 GBK，
// 以位元組有效性判別後轉碼
func decodePage(body []byte) (string, error) {
	if utf8.Valid(body) {
		return string(body), nil
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("gbk decode: %w", err)
	}
	return string(decoded), nil
}
