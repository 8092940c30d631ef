package models

import "time"

// Booking keeps a snapshot of passenger data and price taken at checkout;
// neither is re-synced with the user or schedule afterwards.
type Booking struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	ScheduleID     string        `json:"scheduleId"`
	PassengerName  string        `json:"passengerName"`
	PassengerEmail string        `json:"passengerEmail"`
	PassengerPhone string        `json:"passengerPhone"`
	NumberOfSeats  int           `json:"numberOfSeats"`
	TotalPrice     int64         `json:"totalPrice"`
	BookingCode    string        `json:"bookingCode"`
	Status         BookingStatus `json:"status"`
	PaymentProof   string        `json:"paymentProof,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (b Booking) HasProof() bool {
	return b.PaymentProof != ""
}

// BookingDetail is a booking enriched for display. Schedule and Vehicle are nil
// when their references dangle.
type BookingDetail struct {
	Booking
	Schedule *Schedule `json:"schedule,omitempty"`
	Vehicle  *Vehicle  `json:"vehicle,omitempty"`
}

// BookingInput carries checkout form data.
type BookingInput struct {
	ScheduleID     string `json:"scheduleId"`
	NumberOfSeats  int    `json:"numberOfSeats"`
	PassengerName  string `json:"passengerName"`
	PassengerEmail string `json:"passengerEmail"`
	PassengerPhone string `json:"passengerPhone"`
	PaymentProof   string `json:"paymentProof"`
}
