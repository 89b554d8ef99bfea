package recording

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc      func(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	GetByIDFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.HistoryEntry, error)
	GetByIDsFunc    func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.HistoryEntry, error)
	UpdateScoreFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID, score float64) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.HistoryEntry
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
		UpdateScore []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Score  float64
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetByIDs    sync.RWMutex
	lockUpdateScore sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.HistoryEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.HistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *historyRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.HistoryEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("historyRepoMock.GetByIDFunc: method is nil but historyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *historyRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *historyRepoMock) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.HistoryEntry, error) {
	if mock.GetByIDsFunc == nil {
		panic("historyRepoMock.GetByIDsFunc: method is nil but historyRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		IDs    []uuid.UUID
	}{Ctx: ctx, UserID: userID, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, userID, ids)
}

func (mock *historyRepoMock) GetByIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *historyRepoMock) UpdateScore(ctx context.Context, userID uuid.UUID, id uuid.UUID, score float64) error {
	if mock.UpdateScoreFunc == nil {
		panic("historyRepoMock.UpdateScoreFunc: method is nil but historyRepo.UpdateScore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Score  float64
	}{Ctx: ctx, UserID: userID, ID: id, Score: score}
	mock.lockUpdateScore.Lock()
	mock.calls.UpdateScore = append(mock.calls.UpdateScore, callInfo)
	mock.lockUpdateScore.Unlock()
	return mock.UpdateScoreFunc(ctx, userID, id, score)
}

func (mock *historyRepoMock) UpdateScoreCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Score  float64
} {
	mock.lockUpdateScore.RLock()
	calls := mock.calls.UpdateScore
	mock.lockUpdateScore.RUnlock()
	return calls
}
