package tests

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"

	"pub-manager/internal/domain"
	"pub-manager/internal/mocks"
	"pub-manager/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.GuestRepository, *mocks.MenuRepository, *mocks.WaiterRepository, *mocks.QRGenerator, *mocks.OrderPublisher) {
	orders := mocks.NewOrderRepository(t)
	guests := mocks.NewGuestRepository(t)
	menu := mocks.NewMenuRepository(t)
	waiters := mocks.NewWaiterRepository(t)
	qr := mocks.NewQRGenerator(t)
	publisher := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(orders, guests, menu, waiters, qr, publisher)
	return svc, orders, guests, menu, waiters, qr, publisher
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity must be positive", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newOrderService(t)

		for _, quantity := range []int{0, -1, -50} {
			err := svc.Create(ctx, &domain.Order{GuestID: 2, MenuItemID: 3, Quantity: quantity})
			assert.EqualError(t, err, "Quantity must be a positive value")
		}
	})

	t.Run("guest must exist", func(t *testing.T) {
		svc, _, guests, _, _, _, _ := newOrderService(t)

		guests.On("GetGuest", 99).Return(nil, sql.ErrNoRows).Once()

		err := svc.Create(ctx, &domain.Order{GuestID: 99, MenuItemID: 3, Quantity: 1})
		assert.ErrorIs(t, err, service.ErrGuestNotFound)
	})

	t.Run("menu item must exist", func(t *testing.T) {
		svc, _, guests, menu, _, _, _ := newOrderService(t)

		guests.On("GetGuest", 2).Return(&domain.Guest{ID: 2}, nil).Once()
		menu.On("GetMenuItem", 77).Return(nil, sql.ErrNoRows).Once()

		err := svc.Create(ctx, &domain.Order{GuestID: 2, MenuItemID: 77, Quantity: 1})
		assert.ErrorIs(t, err, service.ErrItemNotFound)
	})

	t.Run("created pending with QR and event", func(t *testing.T) {
		svc, orders, guests, menu, _, qr, publisher := newOrderService(t)

		guests.On("GetGuest", 2).Return(&domain.Guest{ID: 2}, nil).Once()
		menu.On("GetMenuItem", 3).Return(&domain.MenuItem{ID: 3, Price: 300}, nil).Once()
		orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
			Run(func(args mock.Arguments) {
				order := args.Get(0).(*domain.Order)
				order.ID = 11
				order.Status = domain.OrderPending
			}).Return(nil).Once()
		qr.On("Generate", 11).Return([]byte("qr"), nil).Once()
		orders.On("SaveQRCode", 11, []byte("qr")).Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()

		order := &domain.Order{GuestID: 2, MenuItemID: 3, Quantity: 2}
		assert.NoError(t, svc.Create(ctx, order))
		assert.Equal(t, domain.OrderPending, order.Status)
	})
}

// Random advance sequences may never skip a stage or move backward.
func TestOrderStatus_AdvanceNeverRegresses(t *testing.T) {
	rank := map[domain.OrderStatus]int{
		domain.OrderPending:   0,
		domain.OrderPreparing: 1,
		domain.OrderCompleted: 2,
		domain.OrderDelivered: 3,
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		status := domain.OrderPending
		for step := 0; step < 20; step++ {
			before := rank[status]
			if rng.Float64() < 0.5 {
				next, ok := status.Advanced()
				if ok {
					assert.Equal(t, before+1, rank[next], "advance must move exactly one stage")
					status = next
				} else {
					assert.Equal(t, status, next)
				}
			}
			assert.GreaterOrEqual(t, rank[status], before)
		}
		// The sweep alone never reaches Delivered, that is the waiter's job.
		assert.NotEqual(t, domain.OrderDelivered, status)
	}
}

func TestOrderService_Deliver(t *testing.T) {
	ctx := context.Background()

	t.Run("order missing", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)

		orders.On("GetOrder", 99).Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.Deliver(ctx, 99, 1), service.ErrOrderNotFound)
	})

	t.Run("waiter missing", func(t *testing.T) {
		svc, orders, _, _, waiters, _, _ := newOrderService(t)

		orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, Status: domain.OrderCompleted}, nil).Once()
		waiters.On("GetWaiter", 42).Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.Deliver(ctx, 5, 42), service.ErrWaiterNotFound)
	})

	t.Run("not completed fails no matter how often retried", func(t *testing.T) {
		svc, orders, _, _, waiters, _, _ := newOrderService(t)

		for _, status := range []domain.OrderStatus{domain.OrderPending, domain.OrderPreparing, domain.OrderDelivered} {
			orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, Status: status}, nil).Times(3)
			waiters.On("GetWaiter", 1).Return(&domain.Waiter{ID: 1}, nil).Times(3)

			for attempt := 0; attempt < 3; attempt++ {
				err := svc.Deliver(ctx, 5, 1)
				assert.EqualError(t, err, "Order is not completed")
			}
		}
	})

	t.Run("delivered", func(t *testing.T) {
		svc, orders, _, _, waiters, _, publisher := newOrderService(t)

		orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, GuestID: 2, Status: domain.OrderCompleted}, nil).Once()
		waiters.On("GetWaiter", 1).Return(&domain.Waiter{ID: 1}, nil).Once()
		orders.On("DeliverOrder", 5, 1).Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()

		assert.NoError(t, svc.Deliver(ctx, 5, 1))
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("missing order", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)

		orders.On("GetOrder", 99).Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.Cancel(ctx, 99), service.ErrOrderNotFound)
	})

	t.Run("cancelled regardless of status", func(t *testing.T) {
		svc, orders, _, _, _, _, publisher := newOrderService(t)

		orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, GuestID: 2, Status: domain.OrderPreparing}, nil).Once()
		orders.On("DeleteOrder", 5).Return(int64(1), nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()

		assert.NoError(t, svc.Cancel(ctx, 5))
	})
}
