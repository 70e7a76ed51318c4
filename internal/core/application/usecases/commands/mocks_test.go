package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/auth"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStatusChangedPublisher struct{ mock.Mock }

func (m *MockStatusChangedPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminActor(t *testing.T) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor("admin", auth.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func userActor(t *testing.T, name string) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(name, auth.RoleUser)
	require.NoError(t, err)
	return actor
}

func storedOrder(t *testing.T, customerName string) *order.Order {
	t.Helper()
	p, err := order.NewProduct("Vinyl Record", 10.0, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(customerName, []*order.Product{p})
	require.NoError(t, err)
	return o
}
