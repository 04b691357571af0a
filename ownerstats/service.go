package ownerstats

import (
	"context"
	"math"
	"sync"
	"time"

	"parkwise/models"
	"parkwise/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const feedLimit = 10

// unknownVehicleType labels bookings whose vehicle type was never recorded.
const unknownVehicleType = "Unknown"

// Service computes the owner dashboard reports. The clock is a field so
// tests can pin "now".
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// resolveLotIDs maps an owner ID to the IDs of the lots it owns. A
// well-formed ID that owns nothing resolves to an empty slice, not an
// error.
func (s *Service) resolveLotIDs(ctx context.Context, ownerID string) ([]string, error) {
	if _, err := primitive.ObjectIDFromHex(ownerID); err != nil {
		return nil, ErrInvalidOwnerID
	}

	ids, err := s.store.LotIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, depErr("resolve owner lots", err)
	}
	return ids, nil
}

// BookingFeed returns the 10 most recent bookings across the owner's lots,
// newest start time first, with user, vehicle, and lot fields joined in
// memory. Missing related documents degrade to empty strings. An empty
// ownerID yields an empty feed.
func (s *Service) BookingFeed(ctx context.Context, ownerID string) ([]models.BookingFeedItem, error) {
	feed := []models.BookingFeedItem{}
	if ownerID == "" {
		return feed, nil
	}

	lotIDs, err := s.resolveLotIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(lotIDs) == 0 {
		return feed, nil
	}

	bookings, err := s.store.RecentBookings(ctx, lotIDs, feedLimit)
	if err != nil {
		return nil, depErr("fetch recent bookings", err)
	}
	if len(bookings) == 0 {
		return feed, nil
	}

	userIDs := make([]string, 0, len(bookings))
	vehicleIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.UserID)
		vehicleIDs = append(vehicleIDs, b.VehicleID)
	}

	users, err := s.store.UsersByID(ctx, userIDs)
	if err != nil {
		return nil, depErr("fetch booking users", err)
	}
	vehicles, err := s.store.VehiclesByID(ctx, vehicleIDs)
	if err != nil {
		return nil, depErr("fetch booking vehicles", err)
	}
	lots, err := s.store.LotsByID(ctx, lotIDs)
	if err != nil {
		return nil, depErr("fetch owned lots", err)
	}

	lotNames := make(map[string]string, len(lots))
	for _, lot := range lots {
		lotNames[lot.LotID] = lot.Name
	}

	for _, b := range bookings {
		u := users[b.UserID]
		v := vehicles[b.VehicleID]
		feed = append(feed, models.BookingFeedItem{
			BookingID:     b.BookingID,
			CustomerName:  utils.TrimJoin(u.FirstName, u.LastName),
			VehicleNumber: v.RegistrationNumber,
			VehicleType:   v.VehicleType,
			LotName:       lotNames[b.LotID],
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
		})
	}
	return feed, nil
}

// RevenueSummary sums hourly rates over every booking for the owner's
// lots. "monthly" covers bookings starting on or after the first instant
// of the current calendar month; the boundary instant itself counts. An
// empty ownerID yields zeroed totals.
func (s *Service) RevenueSummary(ctx context.Context, ownerID string) (models.RevenueSummary, error) {
	summary := models.RevenueSummary{Bookings: []models.RevenueEntry{}}
	if ownerID == "" {
		return summary, nil
	}

	lotIDs, err := s.resolveLotIDs(ctx, ownerID)
	if err != nil {
		return models.RevenueSummary{}, err
	}

	bookings, err := s.store.BookingsForLots(ctx, lotIDs)
	if err != nil {
		return models.RevenueSummary{}, depErr("fetch bookings", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, b := range bookings {
		summary.Total += b.HourlyRate
		if !b.StartTime.Before(monthStart) {
			summary.Monthly += b.HourlyRate
		}
		summary.Bookings = append(summary.Bookings, models.RevenueEntry{
			BookingID: b.BookingID,
			Amount:    b.HourlyRate,
			Date:      b.StartTime,
		})
	}
	return summary, nil
}

// VehicleTypeHistogram counts bookings per vehicle type, in first-seen
// order. Bookings without a recorded type count under "Unknown".
func (s *Service) VehicleTypeHistogram(ctx context.Context, ownerID string) ([]models.VehicleTypeCount, error) {
	counts := []models.VehicleTypeCount{}
	if ownerID == "" {
		return counts, nil
	}

	lotIDs, err := s.resolveLotIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.BookingsForLots(ctx, lotIDs)
	if err != nil {
		return nil, depErr("fetch bookings", err)
	}

	index := map[string]int{}
	for _, b := range bookings {
		vt := b.VehicleType
		if vt == "" {
			vt = unknownVehicleType
		}
		if i, seen := index[vt]; seen {
			counts[i].Count++
			continue
		}
		index[vt] = len(counts)
		counts = append(counts, models.VehicleTypeCount{VehicleType: vt, Count: 1})
	}
	return counts, nil
}

// Utilization reports the share of total capacity occupied right now.
// Capacity and the active-booking count are fetched concurrently; either
// failure fails the whole snapshot.
func (s *Service) Utilization(ctx context.Context, ownerID string) (models.UtilizationSnapshot, error) {
	lotIDs, err := s.resolveLotIDs(ctx, ownerID)
	if err != nil {
		return models.UtilizationSnapshot{}, err
	}

	var (
		wg        sync.WaitGroup
		lots      []models.ParkingLot
		active    int64
		lotsErr   error
		activeErr error
	)
	now := s.now()

	wg.Add(2)
	go func() {
		defer wg.Done()
		lots, lotsErr = s.store.LotsByID(ctx, lotIDs)
	}()
	go func() {
		defer wg.Done()
		active, activeErr = s.store.CountActiveBookings(ctx, lotIDs, now)
	}()
	wg.Wait()

	if lotsErr != nil {
		return models.UtilizationSnapshot{}, depErr("fetch lot capacities", lotsErr)
	}
	if activeErr != nil {
		return models.UtilizationSnapshot{}, depErr("count active bookings", activeErr)
	}

	totalCapacity := 0
	for _, lot := range lots {
		totalCapacity += lot.TwoWheelerCapacity + lot.FourWheelerCapacity
	}

	current := 0.0
	if totalCapacity > 0 {
		current = roundTo2(float64(active) / float64(totalCapacity) * 100)
	}

	return models.UtilizationSnapshot{
		Current:        current,
		Total:          totalCapacity,
		ActiveBookings: active,
	}, nil
}

// roundTo2 rounds half-up to two decimal places.
func roundTo2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
