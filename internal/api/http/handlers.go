package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pub-manager/internal/domain"
	"pub-manager/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Tables  service.TableServiceInterface
	Guests  service.GuestServiceInterface
	Menu    service.MenuServiceInterface
	Waiters service.WaiterServiceInterface
	Orders  service.OrderServiceInterface
	Billing service.BillingServiceInterface
}

func NewHandler(tables service.TableServiceInterface, guests service.GuestServiceInterface, menu service.MenuServiceInterface, waiters service.WaiterServiceInterface, orders service.OrderServiceInterface, billing service.BillingServiceInterface) *Handler {
	return &Handler{
		Tables:  tables,
		Guests:  guests,
		Menu:    menu,
		Waiters: waiters,
		Orders:  orders,
		Billing: billing,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.getTable).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.updateTable).Methods("PUT")
	r.HandleFunc("/api/tables/{id}", h.deleteTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{number}/guests", h.seatGuest).Methods("POST")

	r.HandleFunc("/api/guests", h.getGuests).Methods("GET")
	r.HandleFunc("/api/guests/{id}", h.getGuest).Methods("GET")
	r.HandleFunc("/api/guests/{id}", h.updateGuest).Methods("PUT")
	r.HandleFunc("/api/guests/{id}", h.removeGuest).Methods("DELETE")
	r.HandleFunc("/api/guests/{id}/menu", h.menuForGuest).Methods("GET")

	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/waiters", h.createWaiter).Methods("POST")
	r.HandleFunc("/api/waiters", h.getWaiters).Methods("GET")
	r.HandleFunc("/api/waiters/{id}", h.getWaiter).Methods("GET")
	r.HandleFunc("/api/waiters/{id}", h.updateWaiter).Methods("PUT")
	r.HandleFunc("/api/waiters/{id}", h.deleteWaiter).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.cancelOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/deliver", h.deliverOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/pay", h.payOrder).Methods("POST")
}

// writeServiceError maps the service sentinels onto the wire contract:
// validation/state errors 400, missing ids 404, conflicts 409.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrGuestNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrWaiterNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrTableFull),
		errors.Is(err, service.ErrDuplicateNumber):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNumberNotPositive),
		errors.Is(err, service.ErrSeatsNotPositive),
		errors.Is(err, service.ErrGuestNameLength),
		errors.Is(err, service.ErrNegativeMoney),
		errors.Is(err, service.ErrItemNameLength),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrOrderNotDone),
		errors.Is(err, service.ErrNegativeTip):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pub-manager",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.Create(&table); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Tables.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table.ID = id
	if err := h.Tables.Update(&table); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Tables.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) seatGuest(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(mux.Vars(r)["number"])
	var guest domain.Guest
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Guests.Seat(&guest, number); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, guest)
}

func (h *Handler) getGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Guests.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (h *Handler) getGuest(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	guest, err := h.Guests.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *Handler) updateGuest(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var guest domain.Guest
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	guest.ID = id
	if err := h.Guests.Update(&guest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *Handler) removeGuest(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Guests.Remove(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) menuForGuest(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	menu, err := h.Menu.MenuForGuest(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createWaiter(w http.ResponseWriter, r *http.Request) {
	var waiter domain.Waiter
	if err := json.NewDecoder(r.Body).Decode(&waiter); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Waiters.Create(&waiter); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, waiter)
}

func (h *Handler) getWaiters(w http.ResponseWriter, r *http.Request) {
	waiters, err := h.Waiters.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, waiters)
}

func (h *Handler) getWaiter(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	waiter, err := h.Waiters.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, waiter)
}

func (h *Handler) updateWaiter(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var waiter domain.Waiter
	if err := json.NewDecoder(r.Body).Decode(&waiter); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	waiter.ID = id
	if err := h.Waiters.Update(&waiter); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, waiter)
}

func (h *Handler) deleteWaiter(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Waiters.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.Create(r.Context(), &order); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Cancel(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) deliverOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		WaiterID int `json:"waiter_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.Deliver(r.Context(), id, payload.WaiterID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Tip int `json:"tip"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Billing.PayOrder(r.Context(), id, payload.Tip); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
