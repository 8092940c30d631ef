package models

type ScheduleStatus string

const (
	ScheduleActive   ScheduleStatus = "active"
	ScheduleInactive ScheduleStatus = "inactive"
)

func (s ScheduleStatus) Valid() bool {
	return s == ScheduleActive || s == ScheduleInactive
}

// Schedule is one bookable departure. VehicleID is a weak reference: the
// vehicle may have been deleted since.
type Schedule struct {
	ID             string         `json:"id"`
	Origin         string         `json:"origin"`
	Destination    string         `json:"destination"`
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	Price          int64          `json:"price"`
	AvailableSeats int            `json:"availableSeats"`
	TotalSeats     int            `json:"totalSeats"`
	VehicleID      string         `json:"vehicleId"`
	Status         ScheduleStatus `json:"status"`
}

// Bookable reports whether passengers seats can still be sold on s.
func (s Schedule) Bookable(passengers int) bool {
	return s.Status == ScheduleActive && s.AvailableSeats >= passengers
}

// ScheduleDetail pairs a schedule with its vehicle; Vehicle is nil when the
// reference dangles.
type ScheduleDetail struct {
	Schedule
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}
