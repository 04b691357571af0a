package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"parkwise/db"
	"parkwise/models"
	"parkwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid user"})
		return
	}

	var input struct {
		LotID      string    `json:"lotid"`
		VehicleID  string    `json:"vehicleid"`
		StartTime  time.Time `json:"startTime"`
		EndTime    time.Time `json:"endTime"`
		HourlyRate float64   `json:"hourlyRate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid body"})
		return
	}
	if input.LotID == "" || input.VehicleID == "" || input.StartTime.IsZero() || input.EndTime.IsZero() {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Missing required fields"})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "End time must be after start time"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Snapshot the vehicle type onto the booking so reports survive a
	// deleted vehicle document.
	var vehicle models.Vehicle
	_ = db.VehiclesCollection.FindOne(ctx, bson.M{"vehicleid": input.VehicleID}).Decode(&vehicle)

	booking := models.Booking{
		BookingID:   primitive.NewObjectID().Hex(),
		LotID:       input.LotID,
		UserID:      userID,
		VehicleID:   input.VehicleID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		HourlyRate:  input.HourlyRate,
		VehicleType: vehicle.VehicleType,
		Status:      models.BookingStatusActive,
		GateCode:    utils.GetUUID(),
		CreatedAt:   time.Now(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to create booking"})
		return
	}

	broadcastLotUpdate(booking.LotID)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": booking})
}

// GET /api/bookings/lot/:lotid
func GetBookingsByLot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lotID := ps.ByName("lotid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	bookings, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"lotid": lotID}, opts)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": bookings})
}

// DELETE /api/bookings/:bookingid
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid user"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Only the booking's own user may cancel it.
	filter := bson.M{"bookingid": bookingID, "userid": userID}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}

	var booking models.Booking
	err := db.BookingsCollection.FindOneAndUpdate(ctx, filter, update).Decode(&booking)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Booking not found or not owned by user"})
		return
	}

	broadcastLotUpdate(booking.LotID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cancelled": bookingID})
}
