package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/repositories"
	"github.com/adayportal/backend/internal/utils"
)

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	if a.Name == "" || a.Email == "" {
		return utils.E(utils.CodeInvalidArgument, "ApplicationRepo.Insert", "name and email are required", nil)
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) ListAll(ctx context.Context) ([]models.Application, error) {
	var rows []models.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
