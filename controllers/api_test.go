package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tableside/entity"
	"tableside/repository"
	"tableside/routes"
	"tableside/services"
	"tableside/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Slot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store, err := services.NewStoreService(db, repository.NewSlotRepository(db), services.StoreConfig{
		Seed: []entity.MenuItem{
			{ID: "a", Name: "Carbonara", Price: 10, Category: entity.CategoryMains, Available: true, Stock: 2},
			{ID: "b", Name: "Lemonade", Price: 5, Category: entity.CategoryDrinks, Available: true, Stock: 5},
		},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	hub := ws.NewOrderHub()
	go hub.Run()
	store.SetNotifier(hub)

	r := gin.New()
	routes.RegisterRoutes(r, store, hub)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func TestGetMenu(t *testing.T) {
	r := setupRouter(t)

	w, env := do(t, r, http.MethodGet, "/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []entity.MenuItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestCartEndpoints(t *testing.T) {
	r := setupRouter(t)

	w, _ := do(t, r, http.MethodPost, "/cart/items", gin.H{"itemId": "a"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	w, env := do(t, r, http.MethodPatch, "/cart/items/a", gin.H{"delta": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var cart struct {
		Items    []entity.CartItem `json:"items"`
		Subtotal float64           `json:"subtotal"`
	}
	if err := json.Unmarshal(env.Data, &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cart.Subtotal != 20 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected subtotal 20 qty 2, got %+v", cart)
	}

	// Stock for "a" is 2; a third unit is a conflict.
	w, _ = do(t, r, http.MethodPost, "/cart/items", gin.H{"itemId": "a"})
	if w.Code != http.StatusConflict {
		t.Fatalf("over stock: expected 409, got %d", w.Code)
	}

	w, _ = do(t, r, http.MethodPost, "/cart/items", gin.H{"itemId": "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown item: expected 404, got %d", w.Code)
	}

	w, _ = do(t, r, http.MethodDelete, "/cart/items/a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodDelete, "/cart/items/a", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("remove twice: expected 404, got %d", w.Code)
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	r := setupRouter(t)

	w, _ := do(t, r, http.MethodPost, "/orders", gin.H{"tableNumber": "T1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart: expected 400, got %d", w.Code)
	}

	do(t, r, http.MethodPost, "/cart/items", gin.H{"itemId": "b"})

	w, _ = do(t, r, http.MethodPost, "/orders", gin.H{"name": "Ada"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing table: expected 400, got %d", w.Code)
	}

	w, env := do(t, r, http.MethodPost, "/orders", gin.H{"tableNumber": "T1", "name": "Ada"})
	if w.Code != http.StatusCreated {
		t.Fatalf("place: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var order entity.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Status != entity.StatusPending || order.Total != 5 || order.TableNumber != "T1" {
		t.Fatalf("unexpected order: %+v", order)
	}

	w, env = do(t, r, http.MethodGet, "/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var orders []entity.Order
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("expected the placed order, got %+v", orders)
	}
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	r := setupRouter(t)

	do(t, r, http.MethodPost, "/cart/items", gin.H{"itemId": "b"})
	_, env := do(t, r, http.MethodPost, "/orders", gin.H{"tableNumber": "T2"})
	var order entity.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}

	w, _ := do(t, r, http.MethodPatch, "/admin/orders/"+order.ID+"/status", gin.H{"status": "PREPARING"})
	if w.Code != http.StatusOK {
		t.Fatalf("transition: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	w, _ = do(t, r, http.MethodPatch, "/admin/orders/"+order.ID+"/status", gin.H{"status": "PENDING"})
	if w.Code != http.StatusConflict {
		t.Fatalf("invalid transition: expected 409, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodPatch, "/admin/orders/missing/status", gin.H{"status": "PREPARING"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order: expected 404, got %d", w.Code)
	}
}

func TestAdminMenuEndpoints(t *testing.T) {
	r := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/admin/menu", gin.H{
		"name": "Tiramisu", "price": 7.5, "category": "Specials", "available": true, "stock": 12,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var item entity.MenuItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected a generated id")
	}

	w, env = do(t, r, http.MethodPatch, "/admin/menu/"+item.ID, gin.H{"price": 8.0})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Price != 8.0 {
		t.Fatalf("expected price 8.0, got %v", item.Price)
	}

	w, _ = do(t, r, http.MethodPatch, "/admin/menu/"+item.ID+"/availability", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d", w.Code)
	}

	w, _ = do(t, r, http.MethodDelete, "/admin/menu/"+item.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodDelete, "/admin/menu/"+item.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete twice: expected 404, got %d", w.Code)
	}
}
