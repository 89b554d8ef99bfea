package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/service/recording"
)

var _ recordingService = &recordingServiceMock{}

type recordingServiceMock struct {
	AnalyzeFunc  func(ctx context.Context, input recording.AnalyzeInput) (*recording.AnalyzeResult, error)
	AudioURLFunc func(ctx context.Context, entryID uuid.UUID) (string, error)
	SubmitFunc   func(ctx context.Context, input recording.SubmitInput) (*domain.HistoryEntry, error)

	calls struct {
		Analyze []struct {
			Ctx   context.Context
			Input recording.AnalyzeInput
		}
		AudioURL []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		Submit []struct {
			Ctx   context.Context
			Input recording.SubmitInput
		}
	}
	lockAnalyze  sync.RWMutex
	lockAudioURL sync.RWMutex
	lockSubmit   sync.RWMutex
}

func (mock *recordingServiceMock) Analyze(ctx context.Context, input recording.AnalyzeInput) (*recording.AnalyzeResult, error) {
	if mock.AnalyzeFunc == nil {
		panic("recordingServiceMock.AnalyzeFunc: method is nil but recordingService.Analyze was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recording.AnalyzeInput
	}{Ctx: ctx, Input: input}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, input)
}

func (mock *recordingServiceMock) AnalyzeCalls() []struct {
	Ctx   context.Context
	Input recording.AnalyzeInput
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

func (mock *recordingServiceMock) AudioURL(ctx context.Context, entryID uuid.UUID) (string, error) {
	if mock.AudioURLFunc == nil {
		panic("recordingServiceMock.AudioURLFunc: method is nil but recordingService.AudioURL was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockAudioURL.Lock()
	mock.calls.AudioURL = append(mock.calls.AudioURL, callInfo)
	mock.lockAudioURL.Unlock()
	return mock.AudioURLFunc(ctx, entryID)
}

func (mock *recordingServiceMock) AudioURLCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockAudioURL.RLock()
	calls := mock.calls.AudioURL
	mock.lockAudioURL.RUnlock()
	return calls
}

func (mock *recordingServiceMock) Submit(ctx context.Context, input recording.SubmitInput) (*domain.HistoryEntry, error) {
	if mock.SubmitFunc == nil {
		panic("recordingServiceMock.SubmitFunc: method is nil but recordingService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recording.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *recordingServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input recording.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
