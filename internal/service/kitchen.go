package service

import (
	"context"
	"log"
	"time"

	"pub-manager/internal/domain"
)

// KitchenSweep simulates the kitchen: on every tick each non-Delivered order
// moves one stage forward with independent probability Chance. Completed
// orders stay put until a waiter delivers them.
type KitchenSweep struct {
	Orders   OrderRepository
	Rand     Rand
	Interval time.Duration
	Chance   float64
}

func NewKitchenSweep(orders OrderRepository, rand Rand, interval time.Duration, chance float64) *KitchenSweep {
	return &KitchenSweep{Orders: orders, Rand: rand, Interval: interval, Chance: chance}
}

func (k *KitchenSweep) Run(ctx context.Context) {
	log.Println("Starting kitchen sweep...")
	ticker := time.NewTicker(k.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Kitchen sweep stopped")
			return
		case <-ticker.C:
			if err := k.Sweep(); err != nil {
				log.Printf("[pub-manager] kitchen sweep error: %v", err)
			}
		}
	}
}

// Sweep runs one pass. The batch is applied in a single transaction by the
// repository.
func (k *KitchenSweep) Sweep() error {
	orders, err := k.Orders.ListActiveOrders()
	if err != nil {
		return err
	}

	var changes []domain.StatusChange
	for _, order := range orders {
		next, ok := order.Status.Advanced()
		if !ok {
			continue
		}
		if k.Rand.Float64() < k.Chance {
			changes = append(changes, domain.StatusChange{OrderID: order.ID, Status: next})
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return k.Orders.AdvanceOrders(changes)
}
