package tests

import (
	"database/sql"
	"testing"

	"pub-manager/internal/domain"
	"pub-manager/internal/mocks"
	"pub-manager/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyFor(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		seats  int
		want   domain.TableStatus
	}{
		{"empty table", 0, 4, domain.TableAvailable},
		{"partially seated", 2, 4, domain.TableOccupied},
		{"exactly full", 4, 4, domain.TableFull},
		{"over capacity stays full", 5, 4, domain.TableFull},
		{"single seat taken", 1, 1, domain.TableFull},
		{"single seat freed", 0, 1, domain.TableAvailable},
		{"full minus one", 3, 4, domain.TableOccupied},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, domain.OccupancyFor(testCase.guests, testCase.seats))
		})
	}
}

func TestTableService_CreateValidation(t *testing.T) {
	tests := []struct {
		name          string
		table         *domain.Table
		expectedError error
	}{
		{
			name:          "negative number",
			table:         &domain.Table{Number: -1, Seats: 4},
			expectedError: service.ErrNumberNotPositive,
		},
		{
			name:          "zero number",
			table:         &domain.Table{Number: 0, Seats: 4},
			expectedError: service.ErrNumberNotPositive,
		},
		{
			name:          "zero seats",
			table:         &domain.Table{Number: 7, Seats: 0},
			expectedError: service.ErrSeatsNotPositive,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewTableRepository(t)
			svc := service.NewTableService(repository)

			err := svc.Create(testCase.table)

			assert.ErrorIs(t, err, testCase.expectedError)
			// No row may be created on validation failure.
			repository.AssertNotCalled(t, "CreateTable")
		})
	}
}

func TestTableService_CreateValidationMessage(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	err := svc.Create(&domain.Table{Number: -1, Seats: 4})

	assert.EqualError(t, err, "Table number must be a positive value")
}

func TestTableService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repository := mocks.NewTableRepository(t)
		svc := service.NewTableService(repository)

		repository.On("GetTableByNumber", 7).Return(nil, sql.ErrNoRows).Once()
		repository.On("CreateTable", &domain.Table{Number: 7, Seats: 4}).Return(nil).Once()

		err := svc.Create(&domain.Table{Number: 7, Seats: 4})
		assert.NoError(t, err)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repository := mocks.NewTableRepository(t)
		svc := service.NewTableService(repository)

		repository.On("GetTableByNumber", 7).Return(&domain.Table{ID: 3, Number: 7}, nil).Once()

		err := svc.Create(&domain.Table{Number: 7, Seats: 4})
		assert.ErrorIs(t, err, service.ErrDuplicateNumber)
	})
}

func TestTableService_Delete(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		repository := mocks.NewTableRepository(t)
		svc := service.NewTableService(repository)

		repository.On("DeleteTable", 99).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.Delete(99), service.ErrTableNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		repository := mocks.NewTableRepository(t)
		svc := service.NewTableService(repository)

		repository.On("DeleteTable", 3).Return(int64(1), nil).Once()

		assert.NoError(t, svc.Delete(3))
	})
}
