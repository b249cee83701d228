package eventlog

import (
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// Zap EventPublisher 實作
// ===========================

// ZapEventPublisher 以結構化日誌落地領域事件
//
// 設計原則：
// 1. 實作 shared.EventPublisher 介面（介面定義在 Domain Layer）
// 2. 事件以結構化欄位記錄（event_id / event_type / aggregate_id / occurred_at）
// 3. 本模組沒有外部訊息佇列：結構化日誌就是事件的落地形式（審計與除錯用）
//
// 注意：
// - 發布器只記錄事件的中繼資料，不記錄聚合內容（聚合可能含個資）
type ZapEventPublisher struct {
	logger *zap.Logger
}

// NewZapEventPublisher 創建 Zap 事件發布器
// 參數：
// - logger: zap 結構化日誌實例
func NewZapEventPublisher(logger *zap.Logger) *ZapEventPublisher {
	return &ZapEventPublisher{logger: logger}
}

// Publish 發布單一領域事件
//
// 永遠成功（寫日誌不會失敗）；保留 error 返回以符合介面
func (p *ZapEventPublisher) Publish(event shared.DomainEvent) error {
	p.logger.Info("domain event",
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// PublishBatch 依序發布多個領域事件
func (p *ZapEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
