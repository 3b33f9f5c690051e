package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/repositories"
	"github.com/adayportal/backend/internal/utils"
)

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) repositories.ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	if a.Name == "" || a.Email == "" {
		return utils.E(utils.CodeInvalidArgument, "ApplicationRepo.Insert", "name and email are required", nil)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.UpdatedAt = time.Now().UTC()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *applicationRepo) ListAll(ctx context.Context) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Application
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
