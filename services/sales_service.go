package services

import (
	"sort"
	"time"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
)

// SalesService is a pure computation layer over completed orders fetched
// from the order store. No state, no side effects.
type SalesService struct{}

func NewSalesService() *SalesService {
	return &SalesService{}
}

type DailySales struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"totalAmount"`
	OrderCount  int     `json:"orderCount"`
}

type ItemSales struct {
	ItemName     string  `json:"itemName"`
	TotalSales   float64 `json:"totalSales"`
	QuantitySold int     `json:"quantitySold"`
}

type MonthlySummary struct {
	Month             int            `json:"month"`
	Year              int            `json:"year"`
	TotalSales        float64        `json:"totalSales"`
	OrderCount        int            `json:"orderCount"`
	DailyTransactions []DailySales   `json:"dailyTransactions"`
	Orders            []entity.Order `json:"orders"`
}

// MonthWindow resolves a year/month pair to [day 1 00:00:00, last day
// 23:59:59] in local time. Zero values mean the current month.
func MonthWindow(year, month int) (time.Time, time.Time) {
	now := time.Now()
	if year == 0 || month == 0 {
		year, month = now.Year(), int(now.Month())
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// MonthlyTotals sums totalAmount and counts orders, completed only.
func (s *SalesService) MonthlyTotals(orders []entity.Order) (totalSales float64, orderCount int) {
	for _, o := range orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		totalSales += o.TotalAmount
		orderCount++
	}
	return totalSales, orderCount
}

// DailyBreakdown groups completed orders by their local calendar date.
// Dates with no orders are omitted, never zero-filled. Output is sorted by
// date for stable responses.
func (s *SalesService) DailyBreakdown(orders []entity.Order) []DailySales {
	byDate := make(map[string]*DailySales)
	for _, o := range orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		date := o.Date.Format("2006-01-02")
		d, ok := byDate[date]
		if !ok {
			d = &DailySales{Date: date}
			byDate[date] = d
		}
		d.TotalAmount += o.TotalAmount
		d.OrderCount++
	}

	out := make([]DailySales, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ItemBreakdown groups line items by display name, so two menu items that
// share a name merge into one row. Sorted by revenue, highest first.
func (s *SalesService) ItemBreakdown(orders []entity.Order) []ItemSales {
	byName := make(map[string]*ItemSales)
	for _, o := range orders {
		for _, it := range o.Items {
			row, ok := byName[it.Name]
			if !ok {
				row = &ItemSales{ItemName: it.Name}
				byName[it.Name] = row
			}
			row.TotalSales += it.Price * float64(it.Quantity)
			row.QuantitySold += it.Quantity
		}
	}

	out := make([]ItemSales, 0, len(byName))
	for _, row := range byName {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSales != out[j].TotalSales {
			return out[i].TotalSales > out[j].TotalSales
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out
}
