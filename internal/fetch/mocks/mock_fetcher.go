package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fetchbench/internal/model"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (*model.UUIDPayload, error) {
	args := m.Called(ctx, url)
	if f, ok := args.Get(0).(func(context.Context, string) *model.UUIDPayload); ok {
		return f(ctx, url), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UUIDPayload), args.Error(1)
}
