package repository

import (
	"context"
	"time"

	"lashstudio/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Price           float64   `gorm:"column:price"`
	Description     *string   `gorm:"column:description"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.ServiceDefinition {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return &domain.ServiceDefinition{
		ID:              m.ID,
		Name:            m.Name,
		DurationMinutes: m.DurationMinutes,
		Price:           m.Price,
		Description:     desc,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toServiceModel(s *domain.ServiceDefinition) serviceModel {
	var desc *string
	if s.Description != "" {
		v := s.Description
		desc = &v
	}
	return serviceModel{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Description:     desc,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.ServiceDefinition) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.ServiceDefinition, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.ServiceDefinition, error) {
	var models []serviceModel
	tx := r.db.WithContext(ctx).Order("name").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceDefinition, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.ServiceDefinition) error {
	m := toServiceModel(s)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&serviceModel{}).Error
}
