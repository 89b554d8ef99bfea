package recording

import (
	"context"
	"io"
	"sync"
)

var _ audioStore = &audioStoreMock{}

type audioStoreMock struct {
	DeleteFunc       func(ctx context.Context, keys ...string) error
	GetFunc          func(ctx context.Context, key string) ([]byte, string, error)
	PresignedURLFunc func(ctx context.Context, key string) (string, error)
	PutFunc          func(ctx context.Context, key string, contentType string, r io.Reader, size int64) error

	calls struct {
		Delete []struct {
			Ctx  context.Context
			Keys []string
		}
		Get []struct {
			Ctx context.Context
			Key string
		}
		PresignedURL []struct {
			Ctx context.Context
			Key string
		}
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			R           io.Reader
			Size        int64
		}
	}
	lockDelete       sync.RWMutex
	lockGet          sync.RWMutex
	lockPresignedURL sync.RWMutex
	lockPut          sync.RWMutex
}

func (mock *audioStoreMock) Delete(ctx context.Context, keys ...string) error {
	if mock.DeleteFunc == nil {
		panic("audioStoreMock.DeleteFunc: method is nil but audioStore.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []string
	}{Ctx: ctx, Keys: keys}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, keys...)
}

func (mock *audioStoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Keys []string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *audioStoreMock) Get(ctx context.Context, key string) ([]byte, string, error) {
	if mock.GetFunc == nil {
		panic("audioStoreMock.GetFunc: method is nil but audioStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *audioStoreMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *audioStoreMock) PresignedURL(ctx context.Context, key string) (string, error) {
	if mock.PresignedURLFunc == nil {
		panic("audioStoreMock.PresignedURLFunc: method is nil but audioStore.PresignedURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockPresignedURL.Lock()
	mock.calls.PresignedURL = append(mock.calls.PresignedURL, callInfo)
	mock.lockPresignedURL.Unlock()
	return mock.PresignedURLFunc(ctx, key)
}

func (mock *audioStoreMock) PresignedURLCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockPresignedURL.RLock()
	calls := mock.calls.PresignedURL
	mock.lockPresignedURL.RUnlock()
	return calls
}

func (mock *audioStoreMock) Put(ctx context.Context, key string, contentType string, r io.Reader, size int64) error {
	if mock.PutFunc == nil {
		panic("audioStoreMock.PutFunc: method is nil but audioStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		R           io.Reader
		Size        int64
	}{Ctx: ctx, Key: key, ContentType: contentType, R: r, Size: size}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, r, size)
}

func (mock *audioStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	R           io.Reader
	Size        int64
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
