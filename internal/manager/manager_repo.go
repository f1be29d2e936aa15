package manager

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the existence-check gate shared by the leave and employee
// services, and the credential lookup for manager logins.
type Repository interface {
	FindByID(ctx context.Context, managerID string) (*Manager, error)
	Exists(ctx context.Context, managerID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, managerID string) (*Manager, error) {
	var m Manager
	err := r.db.WithContext(ctx).First(&m, "ManagerId = ?", managerID).Error
	return &m, err
}

func (r *repository) Exists(ctx context.Context, managerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Manager{}).
		Where("ManagerId = ?", managerID).
		Count(&count).Error
	return count > 0, err
}
