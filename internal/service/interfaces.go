package service

import (
	"context"

	"pub-manager/internal/domain"
)

type TableRepository interface {
	CreateTable(table *domain.Table) error
	ListTables() ([]domain.Table, error)
	GetTable(id int) (*domain.Table, error)
	GetTableByNumber(number int) (*domain.Table, error)
	UpdateTable(table *domain.Table) error
	DeleteTable(id int) (int64, error)
}

type GuestRepository interface {
	SeatGuest(guest *domain.Guest, table *domain.Table) error
	ListGuests() ([]domain.Guest, error)
	GetGuest(id int) (*domain.Guest, error)
	UpdateGuest(guest *domain.Guest) error
	DeleteGuest(id int) (int64, error)
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
}

type WaiterRepository interface {
	CreateWaiter(waiter *domain.Waiter) error
	ListWaiters() ([]domain.Waiter, error)
	GetWaiter(id int) (*domain.Waiter, error)
	UpdateWaiter(waiter *domain.Waiter) error
	DeleteWaiter(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	DeleteOrder(id int) (int64, error)
	DeliverOrder(orderID, waiterID int) error
	ListActiveOrders() ([]domain.Order, error)
	AdvanceOrders(changes []domain.StatusChange) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
	SettleOrder(orderID, guestID, owed, waiterID, tip int) error
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// Rand abstracts the randomness source of the kitchen sweep so tests can feed
// deterministic sequences.
type Rand interface {
	Float64() float64
}

type TableServiceInterface interface {
	Create(table *domain.Table) error
	List() ([]domain.Table, error)
	Get(id int) (*domain.Table, error)
	Update(table *domain.Table) error
	Delete(id int) error
}

type GuestServiceInterface interface {
	Seat(guest *domain.Guest, tableNumber int) error
	List() ([]domain.Guest, error)
	Get(id int) (*domain.Guest, error)
	Update(guest *domain.Guest) error
	Remove(id int) error
}

type MenuServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
	MenuForGuest(ctx context.Context, guestID int) ([]domain.MenuItem, error)
}

type WaiterServiceInterface interface {
	Create(waiter *domain.Waiter) error
	List() ([]domain.Waiter, error)
	Get(id int) (*domain.Waiter, error)
	Update(waiter *domain.Waiter) error
	Delete(id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	List() ([]domain.Order, error)
	Get(id int) (*domain.Order, error)
	Deliver(ctx context.Context, orderID, waiterID int) error
	Cancel(ctx context.Context, id int) error
	QRCode(id int) ([]byte, error)
}

type BillingServiceInterface interface {
	PayOrder(ctx context.Context, orderID, tip int) error
}

var (
	_ TableServiceInterface   = (*TableService)(nil)
	_ GuestServiceInterface   = (*GuestService)(nil)
	_ MenuServiceInterface    = (*MenuService)(nil)
	_ WaiterServiceInterface  = (*WaiterService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ BillingServiceInterface = (*BillingService)(nil)
)
