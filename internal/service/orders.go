package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"pub-manager/internal/domain"
)

type OrderService struct {
	repository OrderRepository
	guests     GuestRepository
	menu       MenuRepository
	waiters    WaiterRepository
	qr         QRGenerator
	publisher  OrderPublisher
}

func NewOrderService(repository OrderRepository, guests GuestRepository, menu MenuRepository, waiters WaiterRepository, qr QRGenerator, publisher OrderPublisher) *OrderService {
	return &OrderService{
		repository: repository,
		guests:     guests,
		menu:       menu,
		waiters:    waiters,
		qr:         qr,
		publisher:  publisher,
	}
}

// Create validates the order eagerly instead of leaning on foreign key
// constraint errors, so missing guests and items surface as clean not-founds.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if order.Quantity <= 0 {
		return ErrQuantityInvalid
	}

	if _, err := s.guests.GetGuest(order.GuestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGuestNotFound
		}
		return err
	}
	if _, err := s.menu.GetMenuItem(order.MenuItemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}

	if err := s.repository.CreateOrder(order); err != nil {
		return err
	}

	if s.qr != nil {
		qr, err := s.qr.Generate(order.ID)
		if err != nil {
			log.Printf("[pub-manager] failed to generate check QR for order %d: %v", order.ID, err)
		} else if err := s.repository.SaveQRCode(order.ID, qr); err != nil {
			log.Printf("[pub-manager] failed to store check QR for order %d: %v", order.ID, err)
		}
	}

	s.publish(ctx, "order_created", order.ID, order.GuestID, 0)
	return nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repository.ListOrders()
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, err := s.repository.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// Deliver hands a Completed order to a waiter. A second deliver on the same
// order fails the status check, the order is no longer Completed.
func (s *OrderService) Deliver(ctx context.Context, orderID, waiterID int) error {
	order, err := s.repository.GetOrder(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.waiters.GetWaiter(waiterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWaiterNotFound
		}
		return err
	}

	if order.Status != domain.OrderCompleted {
		return ErrOrderNotDone
	}

	if err := s.repository.DeliverOrder(orderID, waiterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotDone
		}
		return err
	}

	s.publish(ctx, "order_delivered", orderID, order.GuestID, 0)
	return nil
}

// Cancel deletes an order unconditionally given it exists.
func (s *OrderService) Cancel(ctx context.Context, id int) error {
	order, err := s.repository.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	affected, err := s.repository.DeleteOrder(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	s.publish(ctx, "order_cancelled", id, order.GuestID, 0)
	return nil
}

func (s *OrderService) QRCode(id int) ([]byte, error) {
	qr, err := s.repository.GetQRCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(qr) == 0 && s.qr != nil {
		qr, err = s.qr.Generate(id)
		if err != nil {
			return nil, err
		}
		if err := s.repository.SaveQRCode(id, qr); err != nil {
			log.Printf("[pub-manager] failed to cache regenerated QR: %v", err)
		}
	}
	return qr, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, orderID, guestID, amount int) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      eventType,
		OrderID:   orderID,
		GuestID:   guestID,
		Amount:    amount,
		Timestamp: time.Now(),
	})
}
