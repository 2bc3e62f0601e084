package service

import (
	"database/sql"
	"errors"

	"pub-manager/internal/domain"
)

type WaiterService struct {
	repository WaiterRepository
}

func NewWaiterService(repository WaiterRepository) *WaiterService {
	return &WaiterService{repository: repository}
}

func validateWaiter(waiter *domain.Waiter) error {
	if len(waiter.Name) > 50 {
		return ErrGuestNameLength
	}
	return nil
}

// Create ignores any client-supplied tips value, the tips ledger is
// system-managed.
func (s *WaiterService) Create(waiter *domain.Waiter) error {
	if err := validateWaiter(waiter); err != nil {
		return err
	}
	waiter.Tips = 0
	return s.repository.CreateWaiter(waiter)
}

func (s *WaiterService) List() ([]domain.Waiter, error) {
	return s.repository.ListWaiters()
}

func (s *WaiterService) Get(id int) (*domain.Waiter, error) {
	waiter, err := s.repository.GetWaiter(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWaiterNotFound
	}
	return waiter, err
}

func (s *WaiterService) Update(waiter *domain.Waiter) error {
	if err := validateWaiter(waiter); err != nil {
		return err
	}
	if err := s.repository.UpdateWaiter(waiter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWaiterNotFound
		}
		return err
	}
	return nil
}

func (s *WaiterService) Delete(id int) error {
	affected, err := s.repository.DeleteWaiter(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWaiterNotFound
	}
	return nil
}
