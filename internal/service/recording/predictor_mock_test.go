package recording

import (
	"context"
	"sync"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ predictor = &predictorMock{}

type predictorMock struct {
	PredictFunc func(ctx context.Context, clips []domain.AudioClip) (*domain.PredictionBatch, error)

	calls struct {
		Predict []struct {
			Ctx   context.Context
			Clips []domain.AudioClip
		}
	}
	lockPredict sync.RWMutex
}

func (mock *predictorMock) Predict(ctx context.Context, clips []domain.AudioClip) (*domain.PredictionBatch, error) {
	if mock.PredictFunc == nil {
		panic("predictorMock.PredictFunc: method is nil but predictor.Predict was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Clips []domain.AudioClip
	}{Ctx: ctx, Clips: clips}
	mock.lockPredict.Lock()
	mock.calls.Predict = append(mock.calls.Predict, callInfo)
	mock.lockPredict.Unlock()
	return mock.PredictFunc(ctx, clips)
}

func (mock *predictorMock) PredictCalls() []struct {
	Ctx   context.Context
	Clips []domain.AudioClip
} {
	mock.lockPredict.RLock()
	calls := mock.calls.Predict
	mock.lockPredict.RUnlock()
	return calls
}
