package crawler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jackyeh168/resident_id/src/internal/infrastructure/regiondata"
)

// ===========================
// Config 抓取工具配置
// ===========================

// 未設定時的 HTTP 行為預設值：民政部站點偶發逾時，預設重試三次
const (
	DefaultTimeoutSeconds = 30
	DefaultRetryCount     = 3
	DefaultConcurrency    = 4
)

// Config 行政區劃抓取配置
//
// sources 為年度公告頁面索引：每年民政部發布一份
// 《中华人民共和国行政区划代码》公告，各年度 URL 不同
type Config struct {
	Sources        map[int]string `yaml:"sources"`         // 年度 → 公告頁面 URL
	TimeoutSeconds int            `yaml:"timeout_seconds"` // 單次請求逾時（秒，未設定時 30）
	RetryCount     int            `yaml:"retry_count"`     // 失敗重試次數（未設定時 3）
	Concurrency    int            `yaml:"concurrency"`     // 併發抓取年度數上限（未設定時 4）
}

// LoadConfig 從 YAML 檔案讀取抓取配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read crawler config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析 YAML 配置，套用預設值並驗證
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse crawler config: %w", err)
	}
	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.RetryCount <= 0 {
		c.RetryCount = DefaultRetryCount
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
}

// validate 提前攔截壞配置，避免抓到一半才失敗
func (c *Config) validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("crawler config: no sources configured")
	}
	for year, url := range c.Sources {
		if year < regiondata.MinYear || year > regiondata.MaxYear {
			return fmt.Errorf("crawler config: year %d out of range", year)
		}
		if url == "" {
			return fmt.Errorf("crawler config: year %d: empty url", year)
		}
	}
	return nil
}
