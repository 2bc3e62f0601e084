package tests

import (
	"testing"
	"time"

	"pub-manager/internal/domain"
	"pub-manager/internal/mocks"
	"pub-manager/internal/service"

	"github.com/stretchr/testify/assert"
)

// seqRand replays a fixed sequence so sweeps are deterministic.
type seqRand struct {
	values []float64
	index  int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.index%len(r.values)]
	r.index++
	return v
}

func TestKitchenSweep_AdvancesWithProbability(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	rng := &seqRand{values: []float64{0.1, 0.9}}
	sweep := service.NewKitchenSweep(orders, rng, time.Second, 0.5)

	orders.On("ListActiveOrders").Return([]domain.Order{
		{ID: 1, Status: domain.OrderPending},
		{ID: 2, Status: domain.OrderPreparing},
		{ID: 3, Status: domain.OrderCompleted},
	}, nil).Once()

	// Order 1 draws 0.1 and advances, order 2 draws 0.9 and stays. Order 3 is
	// Completed and never enters the draw at all.
	orders.On("AdvanceOrders", []domain.StatusChange{
		{OrderID: 1, Status: domain.OrderPreparing},
	}).Return(nil).Once()

	assert.NoError(t, sweep.Sweep())
	assert.Equal(t, 2, rng.index)
}

func TestKitchenSweep_NoDrawsNoWrite(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	rng := &seqRand{values: []float64{0.99}}
	sweep := service.NewKitchenSweep(orders, rng, time.Second, 0.5)

	orders.On("ListActiveOrders").Return([]domain.Order{
		{ID: 1, Status: domain.OrderPending},
		{ID: 2, Status: domain.OrderPreparing},
	}, nil).Once()

	assert.NoError(t, sweep.Sweep())
	orders.AssertNotCalled(t, "AdvanceOrders")
}

func TestKitchenSweep_EmptyKitchen(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	sweep := service.NewKitchenSweep(orders, &seqRand{values: []float64{0}}, time.Second, 0.5)

	orders.On("ListActiveOrders").Return(nil, nil).Once()

	assert.NoError(t, sweep.Sweep())
	orders.AssertNotCalled(t, "AdvanceOrders")
}
