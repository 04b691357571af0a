package lots

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"parkwise/db"
	"parkwise/filemgr"
	"parkwise/models"
	"parkwise/rdx"
	"parkwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PUT /api/lots/:lotid/banner
func EditLotBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lotID := ps.ByName("lotid")

	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var lot models.ParkingLot
	err := db.ParkingLotsCollection.FindOne(context.TODO(), bson.M{"lotid": lotID}).Decode(&lot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Lot not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	if lot.OwnerID != requestingUserID {
		http.Error(w, "You are not authorized to edit this lot", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	banner, err := filemgr.SaveFormFile(r.MultipartForm, "banner", filemgr.EntityLot, filemgr.PicBanner)
	if err != nil {
		http.Error(w, fmt.Sprintf("Banner upload failed: %v", err), http.StatusBadRequest)
		return
	}
	if banner == "" {
		http.Error(w, "Banner file is required", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{"banner": banner, "updated_at": time.Now()}}
	if _, err := db.ParkingLotsCollection.UpdateOne(context.TODO(), bson.M{"lotid": lotID}, update); err != nil {
		http.Error(w, "Error updating lot", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateLot(lotID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "banner": banner})
}
