package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

var _ profileStore = &profileStoreMock{}

type profileStoreMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.ProfileUpdate
		}
	}
	lockGetByID       sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("profileStoreMock.GetByIDFunc: method is nil but profileStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileStoreMock) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileStoreMock.UpdateProfileFunc: method is nil but profileStore.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.ProfileUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, upd)
}

func (mock *profileStoreMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.ProfileUpdate
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
