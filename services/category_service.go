package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/repository"
)

// ErrDuplicate marks attempts to create a category that already exists.
var ErrDuplicate = errors.New("already exists")

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Create(name string, displayOrder int) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if _, err := s.Repo.FindByName(name); err == nil {
		return nil, fmt.Errorf("%w: category %q", ErrDuplicate, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c := &entity.Category{Name: name, DisplayOrder: displayOrder}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(id uint, name string, displayOrder int) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	c, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.DisplayOrder = displayOrder
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
