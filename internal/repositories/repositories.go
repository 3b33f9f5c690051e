package repositories

import (
	"context"

	"github.com/adayportal/backend/internal/models"
)

// ApplicationRepository persists submitted applications. Insert rejects
// records without the required name and email; ListAll returns newest
// first and never mutates anything.
type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	ListAll(ctx context.Context) ([]models.Application, error)
}
