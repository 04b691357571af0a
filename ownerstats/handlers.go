package ownerstats

import (
	"log"
	"net/http"

	"parkwise/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the owner reports over HTTP. Every report responds with
// the same envelope: {"success": true, "data": ...} or
// {"success": false, "message": ..., "error": ...}.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func respondSuccess(w http.ResponseWriter, data any) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    data,
	})
}

func respondFailure(w http.ResponseWriter, message string, err error) {
	log.Printf("ownerstats: %s: %v", message, err)
	utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// GET /api/owner/bookings/:ownerId
func (h *Handler) GetBookingFeed(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	feed, err := h.svc.BookingFeed(r.Context(), ps.ByName("ownerId"))
	if err != nil {
		respondFailure(w, "Failed to fetch recent bookings", err)
		return
	}
	respondSuccess(w, feed)
}

// GET /api/owner/revenue/:ownerId
func (h *Handler) GetRevenueSummary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	summary, err := h.svc.RevenueSummary(r.Context(), ps.ByName("ownerId"))
	if err != nil {
		respondFailure(w, "Failed to fetch revenue summary", err)
		return
	}
	respondSuccess(w, summary)
}

// GET /api/owner/vehicle-types/:ownerId
func (h *Handler) GetVehicleTypes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	counts, err := h.svc.VehicleTypeHistogram(r.Context(), ps.ByName("ownerId"))
	if err != nil {
		respondFailure(w, "Failed to fetch vehicle type breakdown", err)
		return
	}
	respondSuccess(w, counts)
}

// GET /api/owner/utilization/:ownerId
//
// Unlike the other reports, a missing owner ID here is a 400, not an
// empty success.
func (h *Handler) GetUtilization(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID := ps.ByName("ownerId")
	if ownerID == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false,
			"message": "Owner ID is required",
		})
		return
	}

	snapshot, err := h.svc.Utilization(r.Context(), ownerID)
	if err != nil {
		respondFailure(w, "Failed to fetch capacity utilization", err)
		return
	}
	respondSuccess(w, snapshot)
}
