package domain

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableOccupied  TableStatus = "Occupied"
	TableFull      TableStatus = "Full"
)

// OccupancyFor classifies a table from its seated guest count.
func OccupancyFor(guestCount, seats int) TableStatus {
	switch {
	case guestCount == 0:
		return TableAvailable
	case guestCount >= seats:
		return TableFull
	default:
		return TableOccupied
	}
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderCompleted OrderStatus = "Completed"
	OrderDelivered OrderStatus = "Delivered"
)

// Advanced returns the next kitchen stage for an order. Completed orders wait
// for delivery and Delivered is terminal, so neither advances.
func (s OrderStatus) Advanced() (OrderStatus, bool) {
	switch s {
	case OrderPending:
		return OrderPreparing, true
	case OrderPreparing:
		return OrderCompleted, true
	default:
		return s, false
	}
}

type Table struct {
	ID        int         `json:"id"`
	Number    int         `json:"number"`
	Seats     int         `json:"seats"`
	Status    TableStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type Guest struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Money        int       `json:"money"`
	HasAllergies bool      `json:"has_allergies"`
	HasDiscount  bool      `json:"has_discount"`
	TableID      int       `json:"table_id"`
	TableNumber  int       `json:"table_number"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Price        int       `json:"price"`
	Category     string    `json:"category"`
	HasAllergens bool      `json:"has_allergens"`
	CreatedAt    time.Time `json:"created_at"`
}

var MenuCategories = map[string]bool{
	"International": true,
	"Chinese":       true,
	"French":        true,
	"Indian":        true,
	"Italian":       true,
	"Japanese":      true,
	"Mexican":       true,
	"Other":         true,
}

type Waiter struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Tips      int       `json:"tips"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID         int         `json:"id"`
	GuestID    int         `json:"guest_id"`
	MenuItemID int         `json:"menu_item_id"`
	WaiterID   *int        `json:"waiter_id,omitempty"`
	Quantity   int         `json:"quantity"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// StatusChange is one kitchen sweep update, applied in a batch transaction.
type StatusChange struct {
	OrderID int
	Status  OrderStatus
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	GuestID   int       `json:"guest_id"`
	Amount    int       `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
