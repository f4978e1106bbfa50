package consumer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockLocker) Release(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishSettled(ctx context.Context, e events.JornadaSettled) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockPublisher) PublishBalances(ctx context.Context, list []events.BalanceChanged) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockPublisher) PublishDLQ(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

type MockJackpot struct {
	mock.Mock
}

func (m *MockJackpot) SetCurrent(ctx context.Context, u events.JackpotUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockJackpot) Publish(ctx context.Context, u events.JackpotUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
