package mocks

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"

	"docsearch/internal/raster"
)

type MockRasterizer struct {
	mock.Mock
}

func (m *MockRasterizer) Open(ctx context.Context, path string, kind raster.Kind) (raster.Document, error) {
	args := m.Called(ctx, path, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(raster.Document), args.Error(1)
}

type MockDocument struct {
	mock.Mock
}

func (m *MockDocument) NumPages() int {
	return m.Called().Int(0)
}

func (m *MockDocument) Render(i int) (image.Image, error) {
	args := m.Called(i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(image.Image), args.Error(1)
}

func (m *MockDocument) Close() error {
	return m.Called().Error(0)
}
