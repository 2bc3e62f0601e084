package service

import (
	"database/sql"
	"errors"

	"pub-manager/internal/domain"
)

type GuestService struct {
	repository GuestRepository
	tables     TableRepository
}

func NewGuestService(repository GuestRepository, tables TableRepository) *GuestService {
	return &GuestService{repository: repository, tables: tables}
}

func validateGuest(guest *domain.Guest) error {
	if len(guest.Name) > 50 {
		return ErrGuestNameLength
	}
	if guest.Money < 0 {
		return ErrNegativeMoney
	}
	return nil
}

// Seat creates the guest at the table with the given number. The table status
// recompute happens inside the repository transaction.
func (s *GuestService) Seat(guest *domain.Guest, tableNumber int) error {
	if err := validateGuest(guest); err != nil {
		return err
	}

	table, err := s.tables.GetTableByNumber(tableNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTableNotFound
	}
	if err != nil {
		return err
	}
	if table.Status == domain.TableFull {
		return ErrTableFull
	}

	return s.repository.SeatGuest(guest, table)
}

func (s *GuestService) List() ([]domain.Guest, error) {
	return s.repository.ListGuests()
}

func (s *GuestService) Get(id int) (*domain.Guest, error) {
	guest, err := s.repository.GetGuest(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	return guest, err
}

func (s *GuestService) Update(guest *domain.Guest) error {
	if err := validateGuest(guest); err != nil {
		return err
	}
	if err := s.repository.UpdateGuest(guest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGuestNotFound
		}
		return err
	}
	return nil
}

func (s *GuestService) Remove(id int) error {
	affected, err := s.repository.DeleteGuest(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
