package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc     func(ctx context.Context, s domain.PracticeSession) (*domain.PracticeSession, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.PracticeSession, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.PracticeSession
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.PracticeSession) (*domain.PracticeSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.PracticeSession
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.PracticeSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.PracticeSession, int, error) {
	if mock.ListByUserFunc == nil {
		panic("sessionRepoMock.ListByUserFunc: method is nil but sessionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *sessionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
