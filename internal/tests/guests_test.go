package tests

import (
	"database/sql"
	"strings"
	"testing"

	"pub-manager/internal/domain"
	"pub-manager/internal/mocks"
	"pub-manager/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestGuestService_Seat(t *testing.T) {
	tests := []struct {
		name          string
		guest         *domain.Guest
		tableNumber   int
		prepareMocks  func(guests *mocks.GuestRepository, tables *mocks.TableRepository)
		expectedError error
	}{
		{
			name:        "table not found",
			guest:       &domain.Guest{Name: "Alice", Money: 1200},
			tableNumber: 9,
			prepareMocks: func(guests *mocks.GuestRepository, tables *mocks.TableRepository) {
				tables.On("GetTableByNumber", 9).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrTableNotFound,
		},
		{
			name:        "table full",
			guest:       &domain.Guest{Name: "Bob", Money: 500},
			tableNumber: 12,
			prepareMocks: func(guests *mocks.GuestRepository, tables *mocks.TableRepository) {
				tables.On("GetTableByNumber", 12).
					Return(&domain.Table{ID: 3, Number: 12, Seats: 2, Status: domain.TableFull}, nil).Once()
			},
			expectedError: service.ErrTableFull,
		},
		{
			name:          "name too long",
			guest:         &domain.Guest{Name: strings.Repeat("a", 51), Money: 100},
			tableNumber:   12,
			prepareMocks:  func(guests *mocks.GuestRepository, tables *mocks.TableRepository) {},
			expectedError: service.ErrGuestNameLength,
		},
		{
			name:          "negative money",
			guest:         &domain.Guest{Name: "Carol", Money: -5},
			tableNumber:   12,
			prepareMocks:  func(guests *mocks.GuestRepository, tables *mocks.TableRepository) {},
			expectedError: service.ErrNegativeMoney,
		},
		{
			name:        "seated",
			guest:       &domain.Guest{Name: "Dave", Money: 800},
			tableNumber: 12,
			prepareMocks: func(guests *mocks.GuestRepository, tables *mocks.TableRepository) {
				table := &domain.Table{ID: 3, Number: 12, Seats: 4, Status: domain.TableOccupied}
				tables.On("GetTableByNumber", 12).Return(table, nil).Once()
				guests.On("SeatGuest", &domain.Guest{Name: "Dave", Money: 800}, table).Return(nil).Once()
			},
			expectedError: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			guests := mocks.NewGuestRepository(t)
			tables := mocks.NewTableRepository(t)
			svc := service.NewGuestService(guests, tables)

			testCase.prepareMocks(guests, tables)

			err := svc.Seat(testCase.guest, testCase.tableNumber)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestGuestService_SeatFullTableMessage(t *testing.T) {
	guests := mocks.NewGuestRepository(t)
	tables := mocks.NewTableRepository(t)
	svc := service.NewGuestService(guests, tables)

	tables.On("GetTableByNumber", 12).
		Return(&domain.Table{ID: 3, Number: 12, Seats: 1, Status: domain.TableFull}, nil).Once()

	err := svc.Seat(&domain.Guest{Name: "Eve", Money: 100}, 12)
	assert.EqualError(t, err, "Table is already full")
}

func TestGuestService_Remove(t *testing.T) {
	t.Run("missing guest", func(t *testing.T) {
		guests := mocks.NewGuestRepository(t)
		tables := mocks.NewTableRepository(t)
		svc := service.NewGuestService(guests, tables)

		guests.On("DeleteGuest", 99).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.Remove(99), service.ErrGuestNotFound)
	})

	t.Run("removed", func(t *testing.T) {
		guests := mocks.NewGuestRepository(t)
		tables := mocks.NewTableRepository(t)
		svc := service.NewGuestService(guests, tables)

		guests.On("DeleteGuest", 2).Return(int64(1), nil).Once()

		assert.NoError(t, svc.Remove(2))
	})
}

func TestGuestService_UpdateDoesNotTouchTables(t *testing.T) {
	guests := mocks.NewGuestRepository(t)
	tables := mocks.NewTableRepository(t)
	svc := service.NewGuestService(guests, tables)

	guest := &domain.Guest{ID: 2, Name: "Alice", Money: 700}
	guests.On("UpdateGuest", guest).Return(nil).Once()

	assert.NoError(t, svc.Update(guest))
	// Field edits never recompute occupancy.
	tables.AssertNotCalled(t, "UpdateTable")
}
