package verification

import (
	"errors"
	"testing"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
	"github.com/jackyeh168/resident_id/src/internal/domain/shared"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===========================
// Mocks
// ===========================

// MockVerificationRepository mock implementation of VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Save(ctx shared.TransactionContext, record *verification.VerificationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByID(ctx shared.TransactionContext, verificationID verification.VerificationID) (*verification.VerificationRecord, error) {
	args := m.Called(ctx, verificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verification.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) CountByOutcome(ctx shared.TransactionContext, outcome verification.Outcome) (int64, error) {
	args := m.Called(ctx, outcome)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
	Invocations int // InTransaction 被調用的次數
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	m.Invocations++
	return fn(nil)
}

// MockEventPublisher mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	args := m.Called(events)
	return args.Error(0)
}

// stubDirectory 測試用的年度區劃表
type stubDirectory map[int]map[string]string

func (d stubDirectory) LookupDivision(year int, code string) (string, bool) {
	divisions, ok := d[year]
	if !ok {
		return "", false
	}
	name, ok := divisions[code]
	return name, ok
}

// ===========================
// VerifyIDNumberUseCase Tests
// ===========================

// Test 1: Valid second generation number is recorded as passed
func TestVerifyIDNumberUseCase_Execute_ValidSecondGen_RecordsPassed(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	mockPublisher := new(MockEventPublisher)

	directory := stubDirectory{
		1982: {"420000": "湖北省", "420100": "武漢市", "420111": "洪山區"},
	}
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(directory), mockRepo, mockTxManager, mockPublisher)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251029"}

	// Mock: Save succeeds
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Mock: events published after commit
	mockPublisher.On("PublishBatch", mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.VerificationID, "VerificationID should be generated")
	assert.True(t, result.Valid)
	assert.Equal(t, "second", result.Generation)
	assert.Equal(t, "420111********1029", result.MaskedNumber)
	assert.Empty(t, result.RejectionCode)
	assert.Equal(t, "female", result.Sex)
	assert.Equal(t, "1982-03-25", result.Birthday)
	assert.Equal(t, "湖北省", result.Province)
	assert.Equal(t, "武漢市", result.City)
	assert.Equal(t, "洪山區", result.District)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

// Test 2: Valid first generation number routes by length
func TestVerifyIDNumberUseCase_Execute_ValidFirstGen_RecordsPassed(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, nil)

	cmd := VerifyIDNumberCommand{IDNumber: "420111820325102"}

	// Mock: Save succeeds
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "first", result.Generation)
	assert.Equal(t, "420111*****5102", result.MaskedNumber)
	assert.Equal(t, "female", result.Sex)
	assert.Equal(t, "1982-03-25", result.Birthday, "first generation year takes the 19 prefix")

	mockRepo.AssertExpectations(t)
}

// Test 3: Checksum failure is a recorded rejection, not a use case error
func TestVerifyIDNumberUseCase_Execute_WrongCheckNumber_RecordsRejected(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	mockPublisher := new(MockEventPublisher)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, mockPublisher)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251028"}

	// Mock: rejected record is still saved
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	mockPublisher.On("PublishBatch", mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err, "classification failure should not be a use case error")
	assert.False(t, result.Valid)
	assert.Equal(t, string(idcard.ErrCodeWrongCheckNumber), result.RejectionCode)
	assert.Equal(t, "420111********1028", result.MaskedNumber)
	assert.Empty(t, result.Sex, "rejected result should not carry subject details")
	assert.Empty(t, result.Birthday)

	mockRepo.AssertExpectations(t)
}

// Test 4: Invalid length is rejected with unknown generation
func TestVerifyIDNumberUseCase_Execute_InvalidLength_RecordsRejected(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, nil)

	cmd := VerifyIDNumberCommand{IDNumber: "123"}

	// Mock: rejected record is still saved
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, string(idcard.ErrCodeInvalidLength), result.RejectionCode)
	assert.Equal(t, "unknown", result.Generation)
	assert.Equal(t, "***", result.MaskedNumber, "short input is fully masked")

	mockRepo.AssertExpectations(t)
}

// Test 5: Invalid birthday on a first generation number keeps the generation
func TestVerifyIDNumberUseCase_Execute_FirstGenInvalidBirthday_RecordsRejected(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, nil)

	cmd := VerifyIDNumberCommand{IDNumber: "420111821325102"} // 月份 13 不存在

	// Mock: rejected record is still saved
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, string(idcard.ErrCodeInvalidBirthday), result.RejectionCode)
	assert.Equal(t, "first", result.Generation)

	mockRepo.AssertExpectations(t)
}

// Test 6: Repository Save fails
func TestVerifyIDNumberUseCase_Execute_SaveFails_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	mockPublisher := new(MockEventPublisher)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, mockPublisher)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251029"}

	dbError := errors.New("database write failed")

	// Mock: Save fails
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(dbError)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.Nil(t, result)

	// Verify no events were published (transaction failed)
	mockPublisher.AssertNotCalled(t, "PublishBatch")
}

// Test 7: Events carry the verification outcome
func TestVerifyIDNumberUseCase_Execute_PublishesPassedEvent(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	mockPublisher := new(MockEventPublisher)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, mockPublisher)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251029"}

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Mock: exactly one passed event after commit
	mockPublisher.On("PublishBatch", mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == "verification.passed"
	})).Return(nil)

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

// Test 8: Event publishing failure does not fail the use case
func TestVerifyIDNumberUseCase_Execute_PublishFails_StillSucceeds(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	mockPublisher := new(MockEventPublisher)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, mockPublisher)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251029"}

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Mock: event sink is unavailable
	mockPublisher.On("PublishBatch", mock.Anything).Return(errors.New("event sink unavailable"))

	// Act
	result, err := useCase.Execute(cmd)

	// Assert: 記錄已提交，事件發布失敗不影響結果
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Valid)
}

// Test 9: Nil event publisher is allowed
func TestVerifyIDNumberUseCase_Execute_NilPublisher_Succeeds(t *testing.T) {
	// Arrange
	mockRepo := new(MockVerificationRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewVerifyIDNumberUseCase(idcard.NewParser(nil), mockRepo, mockTxManager, nil)

	cmd := VerifyIDNumberCommand{IDNumber: "420111198203251029"}

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Valid)
}
