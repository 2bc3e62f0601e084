package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pub-manager/internal/domain"
)

type BillingService struct {
	orders    OrderRepository
	guests    GuestRepository
	menu      MenuRepository
	waiters   WaiterRepository
	publisher OrderPublisher
}

func NewBillingService(orders OrderRepository, guests GuestRepository, menu MenuRepository, waiters WaiterRepository, publisher OrderPublisher) *BillingService {
	return &BillingService{
		orders:    orders,
		guests:    guests,
		menu:      menu,
		waiters:   waiters,
		publisher: publisher,
	}
}

// PayOrder settles an order: the guest is debited the line total (discounted
// for discounted guests), the waiter is credited the full tip and the order
// row is deleted, all in one repository transaction. Preconditions fail fast
// in a fixed sequence before any write. An undelivered order has no waiter
// attached and fails the waiter lookup.
func (s *BillingService) PayOrder(ctx context.Context, orderID, tip int) error {
	if tip < 0 {
		return ErrNegativeTip
	}

	order, err := s.orders.GetOrder(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	guest, err := s.guests.GetGuest(order.GuestID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGuestNotFound
	}
	if err != nil {
		return err
	}

	item, err := s.menu.GetMenuItem(order.MenuItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	if order.WaiterID == nil {
		return ErrWaiterNotFound
	}
	if _, err := s.waiters.GetWaiter(*order.WaiterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWaiterNotFound
		}
		return err
	}

	owed := item.Price * order.Quantity
	if guest.HasDiscount {
		owed = DiscountedPrice(owed)
	}

	// Guest balance may go negative here, the ledger does not floor at zero.
	if err := s.orders.SettleOrder(order.ID, guest.ID, owed, *order.WaiterID, tip); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      "order_paid",
			OrderID:   order.ID,
			GuestID:   guest.ID,
			Amount:    owed,
			Timestamp: time.Now(),
		})
	}

	return nil
}
