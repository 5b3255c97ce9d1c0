package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

func completedOrder(date time.Time, total float64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		TotalAmount: total,
		Date:        date,
		Status:      entity.OrderStatusCompleted,
		Items:       items,
	}
}

func TestMonthWindowDefaultsToCurrentMonth(t *testing.T) {
	start, end := MonthWindow(0, 0)
	now := time.Now()
	assert.Equal(t, now.Year(), start.Year())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestMonthWindowExplicit(t *testing.T) {
	start, end := MonthWindow(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	// leap year February ends on the 29th
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local), end)
}

func TestMonthlyTotalsCountsCompletedOnly(t *testing.T) {
	svc := NewSalesService()
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	orders := []entity.Order{
		completedOrder(day, 100),
		completedOrder(day, 50),
		{TotalAmount: 999, Date: day, Status: entity.OrderStatusCancelled},
		{TotalAmount: 999, Date: day, Status: entity.OrderStatusPending},
	}

	total, count := svc.MonthlyTotals(orders)
	assert.Equal(t, 150.0, total)
	assert.Equal(t, 2, count)
}

func TestMonthlyTotalsEmptyInput(t *testing.T) {
	svc := NewSalesService()
	total, count := svc.MonthlyTotals(nil)
	assert.Zero(t, total)
	assert.Zero(t, count)
}

func TestDailyBreakdownGroupsByLocalDate(t *testing.T) {
	svc := NewSalesService()
	d1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 3, 12, 18, 30, 0, 0, time.Local)
	orders := []entity.Order{
		completedOrder(d1, 100),
		completedOrder(d1.Add(3*time.Hour), 40),
		completedOrder(d2, 60),
		{TotalAmount: 999, Date: d1, Status: entity.OrderStatusCancelled},
	}

	daily := svc.DailyBreakdown(orders)
	require.Len(t, daily, 2)
	assert.Equal(t, DailySales{Date: "2025-03-10", TotalAmount: 140, OrderCount: 2}, daily[0])
	assert.Equal(t, DailySales{Date: "2025-03-12", TotalAmount: 60, OrderCount: 1}, daily[1])
}

func TestDailyBreakdownEmptyRange(t *testing.T) {
	svc := NewSalesService()
	assert.Empty(t, svc.DailyBreakdown(nil))
	assert.Empty(t, svc.DailyBreakdown([]entity.Order{
		{TotalAmount: 10, Date: time.Now(), Status: entity.OrderStatusPending},
	}))
}

func TestItemBreakdownMergesSameName(t *testing.T) {
	svc := NewSalesService()
	day := time.Now()
	orders := []entity.Order{
		completedOrder(day, 20, entity.OrderItem{ItemID: "tea-1", Name: "Tea", Price: 10, Quantity: 2}),
		completedOrder(day, 10, entity.OrderItem{ItemID: "tea-2", Name: "Tea", Price: 10, Quantity: 1}),
	}

	rows := svc.ItemBreakdown(orders)
	require.Len(t, rows, 1)
	assert.Equal(t, ItemSales{ItemName: "Tea", TotalSales: 30, QuantitySold: 3}, rows[0])
}

func TestItemBreakdownSortedByRevenue(t *testing.T) {
	svc := NewSalesService()
	day := time.Now()
	orders := []entity.Order{
		completedOrder(day, 0,
			entity.OrderItem{Name: "Tea", Price: 10, Quantity: 1},
			entity.OrderItem{Name: "Coffee", Price: 25, Quantity: 2},
			entity.OrderItem{Name: "Juice", Price: 50, Quantity: 1},
		),
	}

	rows := svc.ItemBreakdown(orders)
	require.Len(t, rows, 3)
	assert.Equal(t, "Coffee", rows[0].ItemName)
	assert.Equal(t, "Juice", rows[1].ItemName)
	assert.Equal(t, "Tea", rows[2].ItemName)
}
