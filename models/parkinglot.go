package models

import "time"

type ParkingLot struct {
	LotID               string    `json:"lotid" bson:"lotid"`
	OwnerID             string    `json:"ownerId" bson:"ownerId"`
	Name                string    `json:"name" bson:"name"`
	Address             string    `json:"address,omitempty" bson:"address,omitempty"`
	TwoWheelerCapacity  int       `json:"twoWheelerCapacity" bson:"twoWheelerCapacity,omitempty"`
	FourWheelerCapacity int       `json:"fourWheelerCapacity" bson:"fourWheelerCapacity,omitempty"`
	Banner              string    `json:"banner,omitempty" bson:"banner,omitempty"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" bson:"updated_at"`
}
