package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	GetWordFunc   func(ctx context.Context, text string) (*domain.Word, error)
	ListWordsFunc func(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error)

	calls struct {
		GetWord []struct {
			Ctx  context.Context
			Text string
		}
		ListWords []struct {
			Ctx        context.Context
			Difficulty domain.Difficulty
		}
	}
	lockGetWord   sync.RWMutex
	lockListWords sync.RWMutex
}

func (mock *vocabularyServiceMock) GetWord(ctx context.Context, text string) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("vocabularyServiceMock.GetWordFunc: method is nil but vocabularyService.GetWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, text)
}

func (mock *vocabularyServiceMock) GetWordCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ListWords(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("vocabularyServiceMock.ListWordsFunc: method is nil but vocabularyService.ListWords was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Difficulty domain.Difficulty
	}{Ctx: ctx, Difficulty: difficulty}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, difficulty)
}

func (mock *vocabularyServiceMock) ListWordsCalls() []struct {
	Ctx        context.Context
	Difficulty domain.Difficulty
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
