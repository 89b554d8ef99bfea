package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc       func(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) (int, []string, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter) ([]domain.HistoryEntry, int, error)
	StatsFunc        func(ctx context.Context, userID uuid.UUID) (domain.HistoryStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.HistoryEntry
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.HistoryFilter
		}
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockDeleteByUser sync.RWMutex
	lockList         sync.RWMutex
	lockStats        sync.RWMutex
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

func (mock *historyRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, []string, error) {
	if mock.DeleteByUserFunc == nil {
		panic("historyRepoMock.DeleteByUserFunc: method is nil but historyRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *historyRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter) ([]domain.HistoryEntry, int, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.HistoryFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.HistoryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *historyRepoMock) Stats(ctx context.Context, userID uuid.UUID) (domain.HistoryStats, error) {
	if mock.StatsFunc == nil {
		panic("historyRepoMock.StatsFunc: method is nil but historyRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *historyRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
