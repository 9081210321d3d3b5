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

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	// Wishlist and createdAt are owned by other write paths and never touched here.
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "image", Value: data.Image},
		{Key: "price", Value: data.Price},
		{Key: "originalPrice", Value: data.OriginalPrice},
		{Key: "discount", Value: data.Discount},
		{Key: "rating", Value: data.Rating},
		{Key: "category", Value: data.Category},
		{Key: "inStock", Value: data.InStock},
		{Key: "onSale", Value: data.OnSale},
		{Key: "highlight", Value: data.Highlight},
		{Key: "disclaimer", Value: data.Disclaimer},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) AdjustWishlist(ctx context.Context, id string, delta int64) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AdjustWishlist").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "wishlist", Value: delta}}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AdjustWishlist").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
