package services

import (
	"strings"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) Get() (*entity.Settings, error) {
	return s.Repo.GetOrCreate()
}

// SettingsUpdate carries partial updates; nil fields stay untouched.
type SettingsUpdate struct {
	ShopName           *string `json:"shopName"`
	UpiID              *string `json:"upiId"`
	SoundNotifications *bool   `json:"soundNotifications"`
	AutoSaveOrders     *bool   `json:"autoSaveOrders"`
}

func (s *SettingsService) Update(in SettingsUpdate) (*entity.Settings, error) {
	cur, err := s.Repo.GetOrCreate()
	if err != nil {
		return nil, err
	}
	if in.ShopName != nil {
		cur.ShopName = strings.TrimSpace(*in.ShopName)
	}
	if in.UpiID != nil {
		cur.UpiID = strings.TrimSpace(*in.UpiID)
	}
	if in.SoundNotifications != nil {
		cur.SoundNotifications = *in.SoundNotifications
	}
	if in.AutoSaveOrders != nil {
		cur.AutoSaveOrders = *in.AutoSaveOrders
	}
	if err := s.Repo.Save(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *SettingsService) UpiID() (string, error) {
	cur, err := s.Repo.GetOrCreate()
	if err != nil {
		return "", err
	}
	return cur.UpiID, nil
}

func (s *SettingsService) SetUpiID(upiID string) (*entity.Settings, error) {
	v := upiID
	return s.Update(SettingsUpdate{UpiID: &v})
}
