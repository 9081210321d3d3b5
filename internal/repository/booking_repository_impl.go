package repository

import (
	"context"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBBookingRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoDBBookingRepositoryImpl{db: db}
}

func (r *MongoDBBookingRepositoryImpl) GetBookings(ctx context.Context) (data []domain.Booking, err error) {
	cursor, err := r.db.Collection("bookings").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBookings").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBookings").Msg("")
		return
	}

	if data == nil {
		data = []domain.Booking{}
	}

	return data, nil
}

func (r *MongoDBBookingRepositoryImpl) AddBooking(ctx context.Context, data domain.Booking) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("bookings").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddBooking").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBBookingRepositoryImpl) SetBookingStatus(ctx context.Context, id string, booked bool) (err error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetBookingStatus").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: bookingID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "booked", Value: booked}}}}

	result, err := r.db.Collection("bookings").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetBookingStatus").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBBookingRepositoryImpl) DeleteBooking(ctx context.Context, id string) (err error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteBooking").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: bookingID}}

	result, err := r.db.Collection("bookings").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteBooking").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
