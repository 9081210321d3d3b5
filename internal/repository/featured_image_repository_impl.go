package repository

import (
	"context"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBFeaturedImageRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewFeaturedImageRepository(db *mongo.Database) FeaturedImageRepository {
	return &MongoDBFeaturedImageRepositoryImpl{db: db}
}

func (r *MongoDBFeaturedImageRepositoryImpl) GetFeaturedImages(ctx context.Context) (data []domain.FeaturedImage, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.db.Collection("featured_images").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetFeaturedImages").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetFeaturedImages").Msg("")
		return
	}

	if data == nil {
		data = []domain.FeaturedImage{}
	}

	return data, nil
}

func (r *MongoDBFeaturedImageRepositoryImpl) CountFeaturedImages(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("featured_images").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountFeaturedImages").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBFeaturedImageRepositoryImpl) AddFeaturedImage(ctx context.Context, data domain.FeaturedImage) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("featured_images").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddFeaturedImage").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBFeaturedImageRepositoryImpl) DeleteFeaturedImageByPublicID(ctx context.Context, publicID string) (err error) {
	filter := bson.D{{Key: "publicId", Value: publicID}}

	result, err := r.db.Collection("featured_images").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteFeaturedImageByPublicID").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
