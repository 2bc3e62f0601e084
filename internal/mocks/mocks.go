// Package mocks holds hand-maintained testify mocks for the service
// interfaces.
package mocks

import (
	"context"

	"pub-manager/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type TableRepository struct{ mock.Mock }

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) CreateTable(table *domain.Table) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) ListTables() ([]domain.Table, error) {
	args := m.Called()
	var r0 []domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) GetTableByNumber(number int) (*domain.Table, error) {
	args := m.Called(number)
	var r0 *domain.Table
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Table)
	}
	return r0, args.Error(1)
}

func (m *TableRepository) UpdateTable(table *domain.Table) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) DeleteTable(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type GuestRepository struct{ mock.Mock }

func NewGuestRepository(t testingT) *GuestRepository {
	m := &GuestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GuestRepository) SeatGuest(guest *domain.Guest, table *domain.Table) error {
	return m.Called(guest, table).Error(0)
}

func (m *GuestRepository) ListGuests() ([]domain.Guest, error) {
	args := m.Called()
	var r0 []domain.Guest
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Guest)
	}
	return r0, args.Error(1)
}

func (m *GuestRepository) GetGuest(id int) (*domain.Guest, error) {
	args := m.Called(id)
	var r0 *domain.Guest
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Guest)
	}
	return r0, args.Error(1)
}

func (m *GuestRepository) UpdateGuest(guest *domain.Guest) error {
	return m.Called(guest).Error(0)
}

func (m *GuestRepository) DeleteGuest(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MenuRepository struct{ mock.Mock }

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	args := m.Called()
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) DeleteMenuItem(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type WaiterRepository struct{ mock.Mock }

func NewWaiterRepository(t testingT) *WaiterRepository {
	m := &WaiterRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WaiterRepository) CreateWaiter(waiter *domain.Waiter) error {
	return m.Called(waiter).Error(0)
}

func (m *WaiterRepository) ListWaiters() ([]domain.Waiter, error) {
	args := m.Called()
	var r0 []domain.Waiter
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Waiter)
	}
	return r0, args.Error(1)
}

func (m *WaiterRepository) GetWaiter(id int) (*domain.Waiter, error) {
	args := m.Called(id)
	var r0 *domain.Waiter
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Waiter)
	}
	return r0, args.Error(1)
}

func (m *WaiterRepository) UpdateWaiter(waiter *domain.Waiter) error {
	return m.Called(waiter).Error(0)
}

func (m *WaiterRepository) DeleteWaiter(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct{ mock.Mock }

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var r0 *domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) DeleteOrder(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) DeliverOrder(orderID, waiterID int) error {
	return m.Called(orderID, waiterID).Error(0)
}

func (m *OrderRepository) ListActiveOrders() ([]domain.Order, error) {
	args := m.Called()
	var r0 []domain.Order
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Order)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) AdvanceOrders(changes []domain.StatusChange) error {
	return m.Called(changes).Error(0)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

func (m *OrderRepository) SettleOrder(orderID, guestID, owed, waiterID, tip int) error {
	return m.Called(orderID, guestID, owed, waiterID, tip).Error(0)
}

type MenuCache struct{ mock.Mock }

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	args := m.Called(ctx)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Bool(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type OrderPublisher struct{ mock.Mock }

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct{ mock.Mock }

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}
