package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named per-test memory DB; a bare :memory: gives every pooled
	// connection its own empty database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Settings{}, &entity.KVEntry{},
	))
	return db
}

func TestKVRepositoryRoundTrip(t *testing.T) {
	r := NewKVRepository(testDB(t))

	_, ok := r.Get("cart_items")
	assert.False(t, ok)

	require.NoError(t, r.Set("cart_items", `[{"id":"a"}]`))
	v, ok := r.Get("cart_items")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	// upsert, not duplicate
	require.NoError(t, r.Set("cart_items", `[]`))
	v, _ = r.Get("cart_items")
	assert.Equal(t, `[]`, v)

	require.NoError(t, r.Remove("cart_items"))
	_, ok = r.Get("cart_items")
	assert.False(t, ok)
}

func TestOrderRepositoryRangeQueries(t *testing.T) {
	db := testDB(t)
	r := NewOrderRepository(db)

	mk := func(num string, day time.Time, status string) {
		o := &entity.Order{
			OrderNumber: num,
			TotalAmount: 100,
			Date:        day,
			Status:      status,
			Items:       []entity.OrderItem{{ItemID: "a", Name: "Tea", Price: 50, Quantity: 2}},
		}
		require.NoError(t, r.Create(db, o))
	}

	mar10 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	mar20 := time.Date(2025, 3, 20, 12, 0, 0, 0, time.Local)
	apr01 := time.Date(2025, 4, 1, 12, 0, 0, 0, time.Local)
	mk("ORD-1", mar10, entity.OrderStatusCompleted)
	mk("ORD-2", mar20, entity.OrderStatusCompleted)
	mk("ORD-3", mar20, entity.OrderStatusCancelled)
	mk("ORD-4", apr01, entity.OrderStatusCompleted)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.Local)

	completed, err := r.FindInRange(start, end, entity.OrderStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 2)
	// newest first, items preloaded
	assert.Equal(t, "ORD-2", completed[0].OrderNumber)
	require.Len(t, completed[0].Items, 1)
	assert.Equal(t, "Tea", completed[0].Items[0].Name)

	all, err := r.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	deleted, err := r.DeleteInRange(start, end)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	remaining, err := r.FindAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "ORD-4", remaining[0].OrderNumber)
}

func TestOrderRepositoryDeleteMissing(t *testing.T) {
	r := NewOrderRepository(testDB(t))
	err := r.Delete(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSettingsGetOrCreate(t *testing.T) {
	r := NewSettingsRepository(testDB(t))

	s, err := r.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "My Restaurant", s.ShopName)
	assert.True(t, s.SoundNotifications)
	assert.False(t, s.AutoSaveOrders)

	s.UpiID = "shop@upi"
	require.NoError(t, r.Save(s))

	again, err := r.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID, "settings must stay a singleton")
	assert.Equal(t, "shop@upi", again.UpiID)
}

func TestMenuRepositoryByItemID(t *testing.T) {
	r := NewMenuRepository(testDB(t))

	require.NoError(t, r.Create(&entity.MenuItem{ItemID: "juice-1", Name: "Orange Juice", Category: "Fresh Juices", Price: 50}))

	m, err := r.FindByItemID("juice-1")
	require.NoError(t, err)
	assert.Equal(t, "Orange Juice", m.Name)

	require.NoError(t, r.DeleteByItemID("juice-1"))
	err = r.DeleteByItemID("juice-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
