package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/repository"
	"github.com/Sridharj9095/amirtham-cooldrinks/utils"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// CreateCompleted persists a finished order. An empty order number gets a
// generated one. Satisfies the cart service's OrderCreator.
func (s *OrderService) CreateCompleted(ctx context.Context, orderNumber string, items []entity.LineItem, totalAmount float64) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items are required", ErrValidation)
	}
	if totalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrValidation)
	}
	if orderNumber == "" {
		orderNumber = utils.NewOrderNumber()
	}

	o := &entity.Order{
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		Date:        time.Now(),
		Status:      entity.OrderStatusCompleted,
		Items:       make([]entity.OrderItem, 0, len(items)),
	}
	for _, it := range items {
		o.Items = append(o.Items, entity.OrderItem{
			ItemID:   it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

func (s *OrderService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// CompletedInMonth fetches completed orders inside the month window, for
// the sales endpoints.
func (s *OrderService) CompletedInMonth(year, month int) ([]entity.Order, error) {
	start, end := MonthWindow(year, month)
	return s.Repo.FindInRange(start, end, entity.OrderStatusCompleted)
}

// DeleteRange removes every order dated inside [startDate, endDate], end
// date inclusive to end of day. Dates come in as "2006-01-02".
func (s *OrderService) DeleteRange(startDate, endDate string) (int64, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date", ErrValidation)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid end date", ErrValidation)
	}
	if start.After(end) {
		return 0, fmt.Errorf("%w: start date must be before or equal to end date", ErrValidation)
	}
	end = end.Add(24*time.Hour - time.Millisecond)
	return s.Repo.DeleteInRange(start, end)
}
