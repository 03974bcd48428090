package repository

import (
	"context"
	"time"

	"lashstudio/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Phone      *string   `gorm:"column:phone"`
	EyeMapping *string   `gorm:"column:eye_mapping"`
	Anamnesis  []byte    `gorm:"column:anamnesis"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	var phone, mapping string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.EyeMapping != nil {
		mapping = *m.EyeMapping
	}
	return &domain.Client{
		ID:         m.ID,
		Name:       m.Name,
		Phone:      phone,
		EyeMapping: mapping,
		Anamnesis:  m.Anamnesis,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toClientModel(c *domain.Client) clientModel {
	var phone, mapping *string
	if c.Phone != "" {
		v := c.Phone
		phone = &v
	}
	if c.EyeMapping != "" {
		v := c.EyeMapping
		mapping = &v
	}
	return clientModel{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      phone,
		EyeMapping: mapping,
		Anamnesis:  c.Anamnesis,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var models []clientModel
	tx := r.db.WithContext(ctx).Order("name").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Client, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&clientModel{}).Error
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
