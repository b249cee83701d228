package verification

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
)

// ===========================
// VerificationPassed 領域事件
// ===========================

// VerificationPassedEvent 驗證通過事件
type VerificationPassedEvent struct {
	eventID        string
	verificationID VerificationID
	generation     idcard.Generation
	occurredAt     time.Time
}

// NewVerificationPassedEvent 創建驗證通過事件
func NewVerificationPassedEvent(verificationID VerificationID, generation idcard.Generation) *VerificationPassedEvent {
	return &VerificationPassedEvent{
		eventID:        uuid.New().String(),
		verificationID: verificationID,
		generation:     generation,
		occurredAt:     time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *VerificationPassedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *VerificationPassedEvent) EventType() string {
	return "verification.passed"
}

// OccurredAt 實現 DomainEvent 介面
func (e *VerificationPassedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *VerificationPassedEvent) AggregateID() string {
	return e.verificationID.String()
}

// VerificationID 獲取驗證記錄 ID
func (e *VerificationPassedEvent) VerificationID() VerificationID {
	return e.verificationID
}

// Generation 獲取號碼世代
func (e *VerificationPassedEvent) Generation() idcard.Generation {
	return e.generation
}

// ===========================
// VerificationRejected 領域事件
// ===========================

// VerificationRejectedEvent 驗證拒絕事件
type VerificationRejectedEvent struct {
	eventID        string
	verificationID VerificationID
	rejectionCode  idcard.ErrorCode
	occurredAt     time.Time
}

// NewVerificationRejectedEvent 創建驗證拒絕事件
func NewVerificationRejectedEvent(verificationID VerificationID, rejectionCode idcard.ErrorCode) *VerificationRejectedEvent {
	return &VerificationRejectedEvent{
		eventID:        uuid.New().String(),
		verificationID: verificationID,
		rejectionCode:  rejectionCode,
		occurredAt:     time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *VerificationRejectedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *VerificationRejectedEvent) EventType() string {
	return "verification.rejected"
}

// OccurredAt 實現 DomainEvent 介面
func (e *VerificationRejectedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *VerificationRejectedEvent) AggregateID() string {
	return e.verificationID.String()
}

// VerificationID 獲取驗證記錄 ID
func (e *VerificationRejectedEvent) VerificationID() VerificationID {
	return e.verificationID
}

// RejectionCode 獲取拒絕代碼
func (e *VerificationRejectedEvent) RejectionCode() idcard.ErrorCode {
	return e.rejectionCode
}
