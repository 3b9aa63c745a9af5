package repository

import (
	"bytes"
	"path/filepath"
	"testing"

	"tableside/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testRepo(t *testing.T) *SlotRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Slot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSlotRepository(db)
}

func TestLoadMissingSlot(t *testing.T) {
	r := testRepo(t)
	data, ok, err := r.Load(SlotMenuItems)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || data != nil {
		t.Fatalf("expected ok=false for a never-written slot, got ok=%v data=%q", ok, data)
	}
}

func TestSaveAndLoad(t *testing.T) {
	r := testRepo(t)
	payload := []byte(`[{"id":"a"}]`)

	if err := r.Save(r.DB, SlotMenuItems, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, ok, err := r.Load(SlotMenuItems)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || !bytes.Equal(data, payload) {
		t.Fatalf("round-trip mismatch: ok=%v data=%q", ok, data)
	}
}

func TestSaveOverwrites(t *testing.T) {
	r := testRepo(t)

	if err := r.Save(r.DB, SlotOrders, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	next := []byte(`[{"id":"o1"}]`)
	if err := r.Save(r.DB, SlotOrders, next); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, ok, err := r.Load(SlotOrders)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(data, next) {
		t.Fatalf("expected latest payload, got %q", data)
	}

	var count int64
	if err := r.DB.Model(&entity.Slot{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("overwrite must not grow the table, got %d rows", count)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	r := testRepo(t)

	if err := r.Save(r.DB, SlotMenuItems, []byte(`[1]`)); err != nil {
		t.Fatalf("save menu: %v", err)
	}
	if err := r.Save(r.DB, SlotOrders, []byte(`[2]`)); err != nil {
		t.Fatalf("save orders: %v", err)
	}

	menu, _, _ := r.Load(SlotMenuItems)
	orders, _, _ := r.Load(SlotOrders)
	if !bytes.Equal(menu, []byte(`[1]`)) || !bytes.Equal(orders, []byte(`[2]`)) {
		t.Fatalf("slots bled into each other: menu=%q orders=%q", menu, orders)
	}
}
