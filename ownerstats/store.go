package ownerstats

import (
	"context"
	"time"

	"parkwise/db"
	"parkwise/models"
	"parkwise/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the read-only data access used by the owner reports. It is an
// interface so report logic can be tested against a fake without a live
// MongoDB.
type Store interface {
	LotIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	LotsByID(ctx context.Context, lotIDs []string) ([]models.ParkingLot, error)
	RecentBookings(ctx context.Context, lotIDs []string, limit int64) ([]models.Booking, error)
	BookingsForLots(ctx context.Context, lotIDs []string) ([]models.Booking, error)
	CountActiveBookings(ctx context.Context, lotIDs []string, now time.Time) (int64, error)
	UsersByID(ctx context.Context, userIDs []string) (map[string]models.User, error)
	VehiclesByID(ctx context.Context, vehicleIDs []string) (map[string]models.Vehicle, error)
}

// mongoStore backs Store with the shared collections.
type mongoStore struct{}

func NewMongoStore() Store {
	return mongoStore{}
}

func (mongoStore) LotIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"lotid": 1})
	lots, err := utils.FindAndDecode[models.ParkingLot](ctx, db.ParkingLotsCollection, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lots))
	for _, lot := range lots {
		ids = append(ids, lot.LotID)
	}
	return ids, nil
}

func (mongoStore) LotsByID(ctx context.Context, lotIDs []string) ([]models.ParkingLot, error) {
	if len(lotIDs) == 0 {
		return nil, nil
	}
	return utils.FindAndDecode[models.ParkingLot](ctx, db.ParkingLotsCollection, bson.M{"lotid": bson.M{"$in": lotIDs}})
}

func (mongoStore) RecentBookings(ctx context.Context, lotIDs []string, limit int64) ([]models.Booking, error) {
	if len(lotIDs) == 0 {
		return nil, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: -1}}).
		SetLimit(limit)
	return utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"lotid": bson.M{"$in": lotIDs}}, opts)
}

func (mongoStore) BookingsForLots(ctx context.Context, lotIDs []string) ([]models.Booking, error) {
	if len(lotIDs) == 0 {
		return nil, nil
	}
	return utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"lotid": bson.M{"$in": lotIDs}})
}

func (mongoStore) CountActiveBookings(ctx context.Context, lotIDs []string, now time.Time) (int64, error) {
	if len(lotIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		"lotid":     bson.M{"$in": lotIDs},
		"startTime": bson.M{"$lte": now},
		"endTime":   bson.M{"$gt": now},
	}
	return db.BookingsCollection.CountDocuments(ctx, filter)
}

func (mongoStore) UsersByID(ctx context.Context, userIDs []string) (map[string]models.User, error) {
	if len(userIDs) == 0 {
		return map[string]models.User{}, nil
	}
	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{"userid": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return byID, nil
}

func (mongoStore) VehiclesByID(ctx context.Context, vehicleIDs []string) (map[string]models.Vehicle, error) {
	if len(vehicleIDs) == 0 {
		return map[string]models.Vehicle{}, nil
	}
	vehicles, err := utils.FindAndDecode[models.Vehicle](ctx, db.VehiclesCollection, bson.M{"vehicleid": bson.M{"$in": vehicleIDs}})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.VehicleID] = v
	}
	return byID, nil
}
