package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type SalesController struct {
	Orders *services.OrderService
	Sales  *services.SalesService
}

func NewSalesController(orders *services.OrderService, sales *services.SalesService) *SalesController {
	return &SalesController{Orders: orders, Sales: sales}
}

// year/month default to the current month when absent
func monthParams(c *gin.Context) (int, int) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	return year, month
}

// GET /api/sales/monthly
func (ctl *SalesController) Monthly(c *gin.Context) {
	year, month := monthParams(c)
	orders, err := ctl.Orders.CompletedInMonth(year, month)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	start, _ := services.MonthWindow(year, month)
	totalSales, orderCount := ctl.Sales.MonthlyTotals(orders)
	resp.OK(c, services.MonthlySummary{
		Month:             int(start.Month()),
		Year:              start.Year(),
		TotalSales:        totalSales,
		OrderCount:        orderCount,
		DailyTransactions: ctl.Sales.DailyBreakdown(orders),
		Orders:            orders,
	})
}

// GET /api/sales/item
func (ctl *SalesController) Item(c *gin.Context) {
	year, month := monthParams(c)
	orders, err := ctl.Orders.CompletedInMonth(year, month)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ctl.Sales.ItemBreakdown(orders))
}
