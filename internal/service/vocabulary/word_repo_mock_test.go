package vocabulary

import (
	"context"
	"sync"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByTextFunc func(ctx context.Context, text string) (*domain.Word, error)
	ListFunc      func(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error)

	calls struct {
		GetByText []struct {
			Ctx  context.Context
			Text string
		}
		List []struct {
			Ctx        context.Context
			Difficulty domain.Difficulty
		}
	}
	lockGetByText sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *wordRepoMock) GetByText(ctx context.Context, text string) (*domain.Word, error) {
	if mock.GetByTextFunc == nil {
		panic("wordRepoMock.GetByTextFunc: method is nil but wordRepo.GetByText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockGetByText.Lock()
	mock.calls.GetByText = append(mock.calls.GetByText, callInfo)
	mock.lockGetByText.Unlock()
	return mock.GetByTextFunc(ctx, text)
}

func (mock *wordRepoMock) GetByTextCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockGetByText.RLock()
	calls := mock.calls.GetByText
	mock.lockGetByText.RUnlock()
	return calls
}

func (mock *wordRepoMock) List(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Difficulty domain.Difficulty
	}{Ctx: ctx, Difficulty: difficulty}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, difficulty)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx        context.Context
	Difficulty domain.Difficulty
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
