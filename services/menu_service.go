package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(itemID string) (*entity.MenuItem, error) {
	return s.Repo.FindByItemID(itemID)
}

func (s *MenuService) Create(m *entity.MenuItem) error {
	if err := validateMenuItem(m); err != nil {
		return err
	}
	if m.ItemID == "" {
		m.ItemID = "item-" + uuid.NewString()
	}
	return s.Repo.Create(m)
}

func (s *MenuService) Update(itemID string, in *entity.MenuItem) (*entity.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return nil, err
	}
	m, err := s.Repo.FindByItemID(itemID)
	if err != nil {
		return nil, err
	}
	m.Name = in.Name
	m.Category = in.Category
	m.Description = in.Description
	m.Price = in.Price
	if in.Image != "" {
		m.Image = in.Image
	}
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(itemID string) error {
	return s.Repo.DeleteByItemID(itemID)
}

func validateMenuItem(m *entity.MenuItem) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Category = strings.TrimSpace(m.Category)
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if m.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if m.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}
