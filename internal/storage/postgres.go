package storage

import (
	"database/sql"
	"fmt"

	"pub-manager/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			seats INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'Available',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS guests (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			money INTEGER NOT NULL,
			has_allergies BOOLEAN NOT NULL DEFAULT FALSE,
			has_discount BOOLEAN NOT NULL DEFAULT FALSE,
			table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			category TEXT NOT NULL,
			has_allergens BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS waiters (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			tips INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			guest_id INTEGER NOT NULL REFERENCES guests(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items(id),
			waiter_id INTEGER REFERENCES waiters(id),
			quantity INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateTable(table *domain.Table) error {
	table.Status = domain.TableAvailable
	return r.DB.QueryRow(
		"INSERT INTO tables (number, seats, status) VALUES ($1, $2, $3) RETURNING id, created_at",
		table.Number, table.Seats, table.Status,
	).Scan(&table.ID, &table.CreatedAt)
}

func (r *PostgresRepository) ListTables() ([]domain.Table, error) {
	rows, err := r.DB.Query(`
		SELECT id, number, seats, status, created_at
		FROM tables
		ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (r *PostgresRepository) GetTable(id int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(
		"SELECT id, number, seats, status, created_at FROM tables WHERE id = $1", id).
		Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) GetTableByNumber(number int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(
		"SELECT id, number, seats, status, created_at FROM tables WHERE number = $1", number).
		Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTable changes number/seats and recomputes the occupancy status in the
// same transaction, since shrinking seats can flip an Occupied table to Full.
func (r *PostgresRepository) UpdateTable(table *domain.Table) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE tables SET number=$1, seats=$2 WHERE id=$3",
		table.Number, table.Seats, table.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM guests WHERE table_id = $1", table.ID).Scan(&count); err != nil {
		return err
	}

	table.Status = domain.OccupancyFor(count, table.Seats)
	if _, err := tx.Exec("UPDATE tables SET status=$1 WHERE id=$2", table.Status, table.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) DeleteTable(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM tables WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SeatGuest inserts the guest and recomputes the table status in one
// transaction so occupancy never observes a half-applied seating.
func (r *PostgresRepository) SeatGuest(guest *domain.Guest, table *domain.Table) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO guests (name, money, has_allergies, has_discount, table_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, guest.Name, guest.Money, guest.HasAllergies, guest.HasDiscount, table.ID).
		Scan(&guest.ID, &guest.CreatedAt)
	if err != nil {
		return err
	}

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM guests WHERE table_id = $1", table.ID).Scan(&count); err != nil {
		return err
	}

	status := domain.OccupancyFor(count, table.Seats)
	if _, err := tx.Exec("UPDATE tables SET status=$1 WHERE id=$2", status, table.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	guest.TableID = table.ID
	guest.TableNumber = table.Number
	return nil
}

func (r *PostgresRepository) ListGuests() ([]domain.Guest, error) {
	rows, err := r.DB.Query(`
		SELECT g.id, g.name, g.money, g.has_allergies, g.has_discount, g.table_id, t.number, g.created_at
		FROM guests g
		JOIN tables t ON g.table_id = t.id
		ORDER BY g.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Money, &g.HasAllergies, &g.HasDiscount, &g.TableID, &g.TableNumber, &g.CreatedAt); err != nil {
			continue
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func (r *PostgresRepository) GetGuest(id int) (*domain.Guest, error) {
	var g domain.Guest
	err := r.DB.QueryRow(`
		SELECT g.id, g.name, g.money, g.has_allergies, g.has_discount, g.table_id, t.number, g.created_at
		FROM guests g
		JOIN tables t ON g.table_id = t.id
		WHERE g.id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Money, &g.HasAllergies, &g.HasDiscount, &g.TableID, &g.TableNumber, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGuest edits guest fields only. Occupancy is untouched: it changes on
// seating and removal, not on name or money edits.
func (r *PostgresRepository) UpdateGuest(guest *domain.Guest) error {
	result, err := r.DB.Exec(`
		UPDATE guests
		SET name=$1, money=$2, has_allergies=$3, has_discount=$4
		WHERE id=$5`,
		guest.Name, guest.Money, guest.HasAllergies, guest.HasDiscount, guest.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteGuest removes the guest and recomputes the table status in one
// transaction.
func (r *PostgresRepository) DeleteGuest(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var tableID int
	err = tx.QueryRow("SELECT table_id FROM guests WHERE id = $1", id).Scan(&tableID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec("DELETE FROM guests WHERE id=$1", id); err != nil {
		return 0, err
	}

	var seats, count int
	if err := tx.QueryRow("SELECT seats FROM tables WHERE id = $1", tableID).Scan(&seats); err != nil {
		return 0, err
	}
	if err := tx.QueryRow("SELECT COUNT(*) FROM guests WHERE table_id = $1", tableID).Scan(&count); err != nil {
		return 0, err
	}

	status := domain.OccupancyFor(count, seats)
	if _, err := tx.Exec("UPDATE tables SET status=$1 WHERE id=$2", status, tableID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_items (name, price, category, has_allergens) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		item.Name, item.Price, item.Category, item.HasAllergens,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, category, has_allergens, created_at
		FROM menu_items
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.HasAllergens, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(
		"SELECT id, name, price, category, has_allergens, created_at FROM menu_items WHERE id = $1", id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.HasAllergens, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, price=$2, category=$3, has_allergens=$4
		WHERE id=$5`,
		item.Name, item.Price, item.Category, item.HasAllergens, item.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateWaiter(waiter *domain.Waiter) error {
	waiter.Tips = 0
	return r.DB.QueryRow(
		"INSERT INTO waiters (name, tips) VALUES ($1, 0) RETURNING id, created_at",
		waiter.Name,
	).Scan(&waiter.ID, &waiter.CreatedAt)
}

func (r *PostgresRepository) ListWaiters() ([]domain.Waiter, error) {
	rows, err := r.DB.Query("SELECT id, name, tips, created_at FROM waiters ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var waiters []domain.Waiter
	for rows.Next() {
		var w domain.Waiter
		if err := rows.Scan(&w.ID, &w.Name, &w.Tips, &w.CreatedAt); err != nil {
			continue
		}
		waiters = append(waiters, w)
	}
	return waiters, nil
}

func (r *PostgresRepository) GetWaiter(id int) (*domain.Waiter, error) {
	var w domain.Waiter
	err := r.DB.QueryRow("SELECT id, name, tips, created_at FROM waiters WHERE id = $1", id).
		Scan(&w.ID, &w.Name, &w.Tips, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) UpdateWaiter(waiter *domain.Waiter) error {
	result, err := r.DB.Exec("UPDATE waiters SET name=$1 WHERE id=$2", waiter.Name, waiter.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteWaiter(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM waiters WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	order.Status = domain.OrderPending
	return r.DB.QueryRow(`
		INSERT INTO orders (guest_id, menu_item_id, quantity, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, order.GuestID, order.MenuItemID, order.Quantity, order.Status).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var o domain.Order
	var waiterID sql.NullInt64
	err := r.DB.QueryRow(`
		SELECT id, guest_id, menu_item_id, waiter_id, quantity, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.GuestID, &o.MenuItemID, &waiterID, &o.Quantity, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if waiterID.Valid {
		id := int(waiterID.Int64)
		o.WaiterID = &id
	}
	return &o, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, guest_id, menu_item_id, waiter_id, quantity, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var waiterID sql.NullInt64
		if err := rows.Scan(&o.ID, &o.GuestID, &o.MenuItemID, &waiterID, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			continue
		}
		if waiterID.Valid {
			id := int(waiterID.Int64)
			o.WaiterID = &id
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *PostgresRepository) DeleteOrder(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeliverOrder(orderID, waiterID int) error {
	result, err := r.DB.Exec(
		"UPDATE orders SET status=$1, waiter_id=$2 WHERE id=$3 AND status=$4",
		domain.OrderDelivered, waiterID, orderID, domain.OrderCompleted)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) ListActiveOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, guest_id, menu_item_id, waiter_id, quantity, status, created_at
		FROM orders
		WHERE status <> $1
		ORDER BY id ASC`, domain.OrderDelivered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var waiterID sql.NullInt64
		if err := rows.Scan(&o.ID, &o.GuestID, &o.MenuItemID, &waiterID, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			continue
		}
		if waiterID.Valid {
			id := int(waiterID.Int64)
			o.WaiterID = &id
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// AdvanceOrders applies a kitchen sweep batch in one transaction so a crash
// mid-sweep leaves no order half-updated.
func (r *PostgresRepository) AdvanceOrders(changes []domain.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, change := range changes {
		if _, err := tx.Exec("UPDATE orders SET status=$1 WHERE id=$2", change.Status, change.OrderID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

// SettleOrder applies the payment writes atomically: debit the guest, credit
// the waiter tip, delete the order. Any miss rolls the whole payment back.
func (r *PostgresRepository) SettleOrder(orderID, guestID, owed, waiterID, tip int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("UPDATE guests SET money = money - $1 WHERE id = $2", owed, guestID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	result, err = tx.Exec("UPDATE waiters SET tips = tips + $1 WHERE id = $2", tip, waiterID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	result, err = tx.Exec("DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
