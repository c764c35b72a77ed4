package dashboards

import (
	"context"
	"time"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardMongoRepository struct {
	Collection *mongo.Collection
}

func NewDashboardMongoRepository(db *mongo.Client, dbName string) contracts.DashboardRepository {
	return &DashboardMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDashboards),
	}
}

func (r *DashboardMongoRepository) FindByRole(ctx context.Context, role models.Role) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	err := r.Collection.FindOne(ctx, bson.M{"role": role}).Decode(&dashboard)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &dashboard, nil
}

func (r *DashboardMongoRepository) UpsertDashboard(ctx context.Context, dashboard *models.Dashboard) error {
	now := time.Now()
	dashboard.UpdatedAt = now

	filter := bson.M{"role": dashboard.Role}
	update := bson.M{
		"$set": bson.M{
			"role":      dashboard.Role,
			"title":     dashboard.Title,
			"view":      dashboard.View,
			"sections":  dashboard.Sections,
			"updatedAt": dashboard.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
