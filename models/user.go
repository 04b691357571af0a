package models

import "time"

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Username  string    `json:"username" bson:"username"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	FirstName string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	LastLogin time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

type Vehicle struct {
	VehicleID          string `json:"vehicleid" bson:"vehicleid"`
	UserID             string `json:"userid" bson:"userid"`
	RegistrationNumber string `json:"registrationNumber" bson:"registrationNumber"`
	VehicleType        string `json:"vehicleType" bson:"vehicleType"`
}
