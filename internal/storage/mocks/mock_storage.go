package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"docsearch/internal/model"
	"docsearch/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, storage.PutObjectOptions) storage.ObjectInfo); ok {
		return f(ctx, key, r, opt), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) ObjectURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

type MockFileLinker struct {
	mock.Mock
}

func (m *MockFileLinker) Link(ctx context.Context, fileName string, r io.Reader, size int64) model.Result[string] {
	args := m.Called(ctx, fileName, r, size)
	return args.Get(0).(model.Result[string])
}
