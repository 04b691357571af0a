package ownerstats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkwise/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerParam(ownerID string) httprouter.Params {
	if ownerID == "" {
		return nil
	}
	return httprouter.Params{{Key: "ownerId", Value: ownerID}}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetBookingFeedSuccessEnvelope(t *testing.T) {
	store := &mockStore{
		LotIDsByOwnerFunc: func(ctx context.Context, ownerID string) ([]string, error) {
			return []string{"lot1"}, nil
		},
		RecentBookingsFunc: func(ctx context.Context, lotIDs []string, limit int64) ([]models.Booking, error) {
			return []models.Booking{{BookingID: "b1", LotID: "lot1"}}, nil
		},
		LotsByIDFunc: func(ctx context.Context, lotIDs []string) ([]models.ParkingLot, error) {
			return []models.ParkingLot{{LotID: "lot1", Name: "Central Lot"}}, nil
		},
	}
	h := NewHandler(newTestService(store, time.Now()))

	rec := httptest.NewRecorder()
	h.GetBookingFeed(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(ownerA))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
	assert.Len(t, body["data"], 1)
}

func TestGetBookingFeedFailureEnvelope(t *testing.T) {
	store := &mockStore{
		LotIDsByOwnerFunc: func(ctx context.Context, ownerID string) ([]string, error) {
			return nil, errors.New("no reachable servers")
		},
	}
	h := NewHandler(newTestService(store, time.Now()))

	rec := httptest.NewRecorder()
	h.GetBookingFeed(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(ownerA))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch recent bookings", body["message"])
	assert.Contains(t, body["error"], "no reachable servers")
}

func TestGetBookingFeedAbsentOwnerIsSuccess(t *testing.T) {
	h := NewHandler(newTestService(&mockStore{}, time.Now()))

	rec := httptest.NewRecorder()
	h.GetBookingFeed(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestGetRevenueSummaryEnvelope(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		LotIDsByOwnerFunc: func(ctx context.Context, ownerID string) ([]string, error) {
			return []string{"lot1"}, nil
		},
		BookingsForLotsFunc: func(ctx context.Context, lotIDs []string) ([]models.Booking, error) {
			return []models.Booking{{BookingID: "b1", HourlyRate: 40, StartTime: now}}, nil
		},
	}
	h := NewHandler(newTestService(store, now))

	rec := httptest.NewRecorder()
	h.GetRevenueSummary(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(ownerA))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 40.0, data["total"])
	assert.Equal(t, 40.0, data["monthly"])
}

func TestGetVehicleTypesMalformedOwnerIsGenericFailure(t *testing.T) {
	h := NewHandler(newTestService(&mockStore{}, time.Now()))

	rec := httptest.NewRecorder()
	h.GetVehicleTypes(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam("garbage"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid owner id")
}

func TestGetUtilizationMissingOwnerIsBadRequest(t *testing.T) {
	h := NewHandler(newTestService(&mockStore{}, time.Now()))

	rec := httptest.NewRecorder()
	h.GetUtilization(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Owner ID is required", body["message"])
	assert.NotContains(t, body, "error")
}

func TestGetUtilizationEnvelope(t *testing.T) {
	lots := []models.ParkingLot{{LotID: "lot1", TwoWheelerCapacity: 30, FourWheelerCapacity: 20}}
	h := NewHandler(newTestService(utilizationStore(lots, 13), time.Now()))

	rec := httptest.NewRecorder()
	h.GetUtilization(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(ownerA))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 26.0, data["current"])
	assert.Equal(t, 50.0, data["total"])
	assert.Equal(t, 13.0, data["activeBookings"])
}

func TestExportRevenuePDF(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		LotIDsByOwnerFunc: func(ctx context.Context, ownerID string) ([]string, error) {
			return []string{"lot1"}, nil
		},
		BookingsForLotsFunc: func(ctx context.Context, lotIDs []string) ([]models.Booking, error) {
			return []models.Booking{{BookingID: "b1", HourlyRate: 40, StartTime: now}}, nil
		},
	}
	h := NewHandler(newTestService(store, now))

	rec := httptest.NewRecorder()
	h.ExportRevenuePDF(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(ownerA))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, rec.Body.Len() > 0)
}

func TestExportRevenuePDFMissingOwner(t *testing.T) {
	h := NewHandler(newTestService(&mockStore{}, time.Now()))

	rec := httptest.NewRecorder()
	h.ExportRevenuePDF(rec, httptest.NewRequest(http.MethodGet, "/", nil), ownerParam(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
