package service

import (
	"context"
	"database/sql"
	"errors"

	"pub-manager/internal/domain"
)

// DiscountPercent is the fixed markdown applied for discounted guests:
// floor(price * 0.85) in integer math.
const DiscountPercent = 85

func DiscountedPrice(price int) int {
	return price * DiscountPercent / 100
}

type MenuService struct {
	repository MenuRepository
	guests     GuestRepository
	cache      MenuCache
}

func NewMenuService(repository MenuRepository, guests GuestRepository, cache MenuCache) *MenuService {
	return &MenuService{repository: repository, guests: guests, cache: cache}
}

func validateMenuItem(item *domain.MenuItem) error {
	if len(item.Name) > 80 {
		return ErrItemNameLength
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	if !domain.MenuCategories[item.Category] {
		return ErrUnknownCategory
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repository.CreateMenuItem(item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.listCached(ctx)
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	item, err := s.repository.GetMenuItem(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repository.UpdateMenuItem(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	affected, err := s.repository.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	s.invalidate(ctx)
	return nil
}

// MenuForGuest returns the orderable menu for one guest: allergenic items are
// dropped for allergic guests and prices are marked down for discounted ones.
// The markdown is display-only, stored prices are never touched.
func (s *MenuService) MenuForGuest(ctx context.Context, guestID int) ([]domain.MenuItem, error) {
	guest, err := s.guests.GetGuest(guestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := s.listCached(ctx)
	if err != nil {
		return nil, err
	}

	menu := []domain.MenuItem{}
	for _, item := range items {
		if guest.HasAllergies && item.HasAllergens {
			continue
		}
		if guest.HasDiscount {
			item.Price = DiscountedPrice(item.Price)
		}
		menu = append(menu, item)
	}
	return menu, nil
}

// listCached serves the full menu from Redis when possible. Items come back
// ordered by id ascending either way.
func (s *MenuService) listCached(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetMenu(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repository.ListMenuItems()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetMenu(ctx, items)
	}
	return items, nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
