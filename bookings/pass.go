package bookings

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"parkwise/db"
	"parkwise/models"
	"parkwise/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

var hmacSecret = passSecret()

func passSecret() string {
	if s := os.Getenv("PASS_SECRET"); s != "" {
		return s
	}
	return "parkwise-pass-secret"
}

// GeneratePassPayload returns a signed payload:
// bookingID|gateCode|timestamp|signature
func GeneratePassPayload(bookingID, gateCode string) string {
	data := fmt.Sprintf("%s|%s|%d", bookingID, gateCode, time.Now().Unix())

	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/bookings/:bookingid/pass — QR gate pass for the booking's user.
func GetGatePass(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOne(context.TODO(), bson.M{
		"bookingid": bookingID,
		"userid":    userID,
	}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if booking.Status != models.BookingStatusActive {
		http.Error(w, "Booking is not active", http.StatusConflict)
		return
	}

	qrPNG, err := qrcode.Encode(GeneratePassPayload(booking.BookingID, booking.GateCode), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}
