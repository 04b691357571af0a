package lots

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
	"go.mongodb.org/mongo-driver/mongo"
)

// POST /api/lots
func CreateLot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ownerID := utils.GetUserIDFromRequest(r)
	if ownerID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid user"})
		return
	}

	var input struct {
		Name                string `json:"name"`
		Address             string `json:"address"`
		TwoWheelerCapacity  int    `json:"twoWheelerCapacity"`
		FourWheelerCapacity int    `json:"fourWheelerCapacity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid body"})
		return
	}
	if input.Name == "" || input.TwoWheelerCapacity < 0 || input.FourWheelerCapacity < 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Missing or invalid fields"})
		return
	}

	now := time.Now()
	lot := models.ParkingLot{
		LotID:               primitive.NewObjectID().Hex(),
		OwnerID:             ownerID,
		Name:                input.Name,
		Address:             input.Address,
		TwoWheelerCapacity:  input.TwoWheelerCapacity,
		FourWheelerCapacity: input.FourWheelerCapacity,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := db.ParkingLotsCollection.InsertOne(r.Context(), lot); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to create lot"})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": lot})
}

// GET /api/lots/:lotid
func GetLot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lotID := ps.ByName("lotid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var lot models.ParkingLot
	err := db.ParkingLotsCollection.FindOne(ctx, bson.M{"lotid": lotID}).Decode(&lot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Lot not found"})
		} else {
			utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Database error"})
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": lot})
}

// GET /api/lots/owner/:ownerId
func GetLotsByOwner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID := ps.ByName("ownerId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	lots, err := utils.FindAndDecode[models.ParkingLot](ctx, db.ParkingLotsCollection, bson.M{"ownerId": ownerID})
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to fetch lots"})
		return
	}
	if lots == nil {
		lots = []models.ParkingLot{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": lots})
}
