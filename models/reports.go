package models

import "time"

// Payloads for the owner analytics endpoints.

type BookingFeedItem struct {
	BookingID     string    `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	VehicleNumber string    `json:"vehicleNumber"`
	VehicleType   string    `json:"vehicleType"`
	LotName       string    `json:"lotName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}

type RevenueEntry struct {
	BookingID string    `json:"id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}

type RevenueSummary struct {
	Total    float64        `json:"total"`
	Monthly  float64        `json:"monthly"`
	Bookings []RevenueEntry `json:"bookings"`
}

type VehicleTypeCount struct {
	VehicleType string `json:"vehicleType"`
	Count       int    `json:"count"`
}

type UtilizationSnapshot struct {
	Current        float64 `json:"current"`
	Total          int     `json:"total"`
	ActiveBookings int64   `json:"activeBookings"`
}
