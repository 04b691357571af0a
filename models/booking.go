package models

import "time"

type Booking struct {
	BookingID   string    `json:"bookingid" bson:"bookingid"`
	LotID       string    `json:"lotid" bson:"lotid"`
	UserID      string    `json:"userid" bson:"userid"`
	VehicleID   string    `json:"vehicleid" bson:"vehicleid"`
	StartTime   time.Time `json:"startTime" bson:"startTime"`
	EndTime     time.Time `json:"endTime" bson:"endTime"`
	HourlyRate  float64   `json:"hourlyRate,omitempty" bson:"hourlyRate,omitempty"`
	VehicleType string    `json:"vehicleType,omitempty" bson:"vehicleType,omitempty"`
	Status      string    `json:"status" bson:"status"`
	GateCode    string    `json:"gateCode,omitempty" bson:"gateCode,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)
