package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"tableside/entity"
	"tableside/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderNotifier receives order events after they are committed, e.g. the
// staff dashboard websocket hub.
type OrderNotifier interface {
	OrderPlaced(o entity.Order)
	OrderStatusChanged(o entity.Order)
}

type StoreConfig struct {
	// Seed is the catalog used when the menuItems slot has never been written.
	Seed []entity.MenuItem
	// OrderDelay is the simulated round-trip before an order is finalized.
	OrderDelay time.Duration
	// StrictFirstAdd rejects adding the first unit of an out-of-stock item.
	// Off by default: the first unit historically bypassed the stock check.
	StrictFirstAdd bool
}

// StoreService is the single source of truth for the menu catalog, the live
// cart and the order history. menuItems and orders are durable (one slot
// each); the cart is session-local and never persisted. All mutations are
// serialized behind one mutex and written to their slots before the
// in-memory commit, so memory never diverges from disk.
type StoreService struct {
	DB    *gorm.DB
	Slots *repository.SlotRepository

	mu        sync.Mutex
	menuItems []entity.MenuItem
	cart      []entity.CartItem
	orders    []entity.Order

	orderDelay     time.Duration
	strictFirstAdd bool
	notifier       OrderNotifier
}

func NewStoreService(db *gorm.DB, slots *repository.SlotRepository, cfg StoreConfig) (*StoreService, error) {
	s := &StoreService{
		DB:             db,
		Slots:          slots,
		orderDelay:     cfg.OrderDelay,
		strictFirstAdd: cfg.StrictFirstAdd,
	}

	data, ok, err := slots.Load(repository.SlotMenuItems)
	if err != nil {
		return nil, fmt.Errorf("%w: load menu: %v", ErrPersistence, err)
	}
	if ok {
		if err := json.Unmarshal(data, &s.menuItems); err != nil {
			return nil, fmt.Errorf("%w: decode menu: %v", ErrPersistence, err)
		}
	} else {
		s.menuItems = append([]entity.MenuItem(nil), cfg.Seed...)
	}

	data, ok, err = slots.Load(repository.SlotOrders)
	if err != nil {
		return nil, fmt.Errorf("%w: load orders: %v", ErrPersistence, err)
	}
	if ok {
		if err := json.Unmarshal(data, &s.orders); err != nil {
			return nil, fmt.Errorf("%w: decode orders: %v", ErrPersistence, err)
		}
	}

	// The cart always starts empty, whatever is on disk.
	return s, nil
}

// SetNotifier must be called before the store starts serving requests.
func (s *StoreService) SetNotifier(n OrderNotifier) { s.notifier = n }

// ----- Read side -----

func (s *StoreService) MenuItems() []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.MenuItem(nil), s.menuItems...)
}

// Cart returns the current cart and its subtotal.
func (s *StoreService) Cart() ([]entity.CartItem, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal float64
	for _, it := range s.cart {
		subtotal += it.Price * float64(it.Quantity)
	}
	return append([]entity.CartItem(nil), s.cart...), subtotal
}

// Orders returns the history newest-first (insertion order).
func (s *StoreService) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Order(nil), s.orders...)
}

// OrdersByPriority is the dashboard sort contract: active statuses first
// (Pending, Preparing, Completed, Cancelled), newer orders first within a status.
func (s *StoreService) OrdersByPriority() []entity.Order {
	out := s.Orders()
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Status.Priority(), out[j].Status.Priority()
		if pi != pj {
			return pi < pj
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// ----- Cart -----

// AddToCart adds one unit of the catalog item. A second unit of an entry
// already at the catalog stock is rejected with ErrStockExceeded.
func (s *StoreService) AddToCart(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findMenuItem(itemID)
	if !ok {
		return fmt.Errorf("%w: menu item %s", ErrNotFound, itemID)
	}

	for i := range s.cart {
		if s.cart[i].ID == itemID {
			if s.cart[i].Quantity >= item.Stock {
				return fmt.Errorf("%w: %s has %d in stock", ErrStockExceeded, item.Name, item.Stock)
			}
			s.cart[i].Quantity++
			return nil
		}
	}

	if s.strictFirstAdd && item.Stock <= 0 {
		return fmt.Errorf("%w: %s is out of stock", ErrStockExceeded, item.Name)
	}
	s.cart = append(s.cart, entity.CartItem{MenuItem: item, Quantity: 1})
	return nil
}

func (s *StoreService) RemoveFromCart(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
}

// UpdateCartQuantity applies delta to the entry's quantity, capped at the
// current catalog stock. If the catalog item was deleted the cap freezes at
// the entry's current quantity. A quantity driven to zero removes the entry.
func (s *StoreService) UpdateCartQuantity(itemID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID != itemID {
			continue
		}

		maxStock := s.cart[i].Quantity
		if item, ok := s.findMenuItem(itemID); ok {
			maxStock = item.Stock
		}

		newQty := s.cart[i].Quantity + delta
		if newQty > maxStock {
			return fmt.Errorf("%w: only %d in stock", ErrStockExceeded, maxStock)
		}
		if newQty <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
		s.cart[i].Quantity = newQty
		return nil
	}
	return fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
}

func (s *StoreService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// ----- Orders -----

type OrderDetails struct {
	TableNumber  string
	CustomerName string
	PhoneNumber  string
}

// PlaceOrder finalizes the cart after the configured delay: it freezes the
// cart into a new Pending order, decrements catalog stock (floored at zero,
// forcing available=false at zero), prepends the order to the history and
// clears the cart. Both slots are written in one transaction before the
// in-memory commit. The context only cancels the wait; once the mutation
// starts it runs to completion.
func (s *StoreService) PlaceOrder(ctx context.Context, details OrderDetails) (*entity.Order, error) {
	if details.TableNumber == "" {
		return nil, ErrTableRequired
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.orderDelay):
	}

	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	items := append([]entity.CartItem(nil), s.cart...)
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	order := entity.Order{
		ID:           uuid.NewString(),
		TableNumber:  details.TableNumber,
		CustomerName: details.CustomerName,
		PhoneNumber:  details.PhoneNumber,
		Items:        items,
		Total:        total,
		Status:       entity.StatusPending,
		Timestamp:    time.Now(),
	}

	nextMenu := append([]entity.MenuItem(nil), s.menuItems...)
	for i := range nextMenu {
		for _, it := range items {
			if it.ID != nextMenu[i].ID {
				continue
			}
			nextMenu[i].Stock -= it.Quantity
			if nextMenu[i].Stock <= 0 {
				nextMenu[i].Stock = 0
				nextMenu[i].Available = false
			}
		}
	}

	nextOrders := append([]entity.Order{order}, s.orders...)

	if err := s.saveAll(nextMenu, nextOrders); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.menuItems = nextMenu
	s.orders = nextOrders
	s.cart = nil
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}
	return &order, nil
}

// UpdateOrderStatus moves the order through the transition table; anything
// outside it is rejected with ErrInvalidTransition.
func (s *StoreService) UpdateOrderStatus(orderID string, status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if !CanTransition(s.orders[idx].Status, status) {
		from := s.orders[idx].Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, status)
	}

	next := append([]entity.Order(nil), s.orders...)
	next[idx].Status = status

	if err := s.saveOrders(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.orders = next
	updated := next[idx]
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.OrderStatusChanged(updated)
	}
	return nil
}

// ----- Menu management -----

func (s *StoreService) ToggleItemAvailability(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]entity.MenuItem(nil), s.menuItems...)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Available = !next[i].Available
			if err := s.saveMenu(next); err != nil {
				return err
			}
			s.menuItems = next
			return nil
		}
	}
	return fmt.Errorf("%w: menu item %s", ErrNotFound, itemID)
}

// AddMenuItem assigns a fresh id and appends the item to the catalog.
func (s *StoreService) AddMenuItem(item entity.MenuItem) (*entity.MenuItem, error) {
	if err := validateItem(item.Price, item.Stock, item.Category); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	next := append(append([]entity.MenuItem(nil), s.menuItems...), item)
	if err := s.saveMenu(next); err != nil {
		return nil, err
	}
	s.menuItems = next
	return &item, nil
}

// MenuItemUpdate carries the fields of a partial edit; nil means unchanged.
type MenuItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Category    *entity.Category `json:"category"`
	Image       *string          `json:"image"`
	Available   *bool            `json:"available"`
	Stock       *int             `json:"stock"`
}

// UpdateMenuItem merges the supplied fields onto the catalog item. Existing
// cart entries and past orders keep their snapshots.
func (s *StoreService) UpdateMenuItem(id string, updates MenuItemUpdate) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]entity.MenuItem(nil), s.menuItems...)
	for i := range next {
		if next[i].ID != id {
			continue
		}

		merged := next[i]
		if updates.Name != nil {
			merged.Name = *updates.Name
		}
		if updates.Description != nil {
			merged.Description = *updates.Description
		}
		if updates.Price != nil {
			merged.Price = *updates.Price
		}
		if updates.Category != nil {
			merged.Category = *updates.Category
		}
		if updates.Image != nil {
			merged.Image = *updates.Image
		}
		if updates.Available != nil {
			merged.Available = *updates.Available
		}
		if updates.Stock != nil {
			merged.Stock = *updates.Stock
		}
		if err := validateItem(merged.Price, merged.Stock, merged.Category); err != nil {
			return nil, err
		}

		next[i] = merged
		if err := s.saveMenu(next); err != nil {
			return nil, err
		}
		s.menuItems = next
		return &merged, nil
	}
	return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, id)
}

// DeleteMenuItem removes the item from the catalog only. Cart entries
// referencing it become stale snapshots (their quantity cap freezes) and
// past orders are untouched.
func (s *StoreService) DeleteMenuItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			next := append([]entity.MenuItem(nil), s.menuItems[:i]...)
			next = append(next, s.menuItems[i+1:]...)
			if err := s.saveMenu(next); err != nil {
				return err
			}
			s.menuItems = next
			return nil
		}
	}
	return fmt.Errorf("%w: menu item %s", ErrNotFound, id)
}

// ----- internals -----

func (s *StoreService) findMenuItem(id string) (entity.MenuItem, bool) {
	for _, it := range s.menuItems {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

func validateItem(price float64, stock int, category entity.Category) error {
	if price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidItem)
	}
	if stock < 0 {
		return fmt.Errorf("%w: negative stock", ErrInvalidItem)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, category)
	}
	return nil
}

func (s *StoreService) saveMenu(menu []entity.MenuItem) error {
	b, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("%w: encode menu: %v", ErrPersistence, err)
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Slots.Save(tx, repository.SlotMenuItems, b)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *StoreService) saveOrders(orders []entity.Order) error {
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%w: encode orders: %v", ErrPersistence, err)
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Slots.Save(tx, repository.SlotOrders, b)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *StoreService) saveAll(menu []entity.MenuItem, orders []entity.Order) error {
	mb, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("%w: encode menu: %v", ErrPersistence, err)
	}
	ob, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%w: encode orders: %v", ErrPersistence, err)
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Slots.Save(tx, repository.SlotMenuItems, mb); err != nil {
			return err
		}
		return s.Slots.Save(tx, repository.SlotOrders, ob)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
