package models

type Vehicle struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Capacity    int    `json:"capacity"`
	DriverName  string `json:"driverName"`
	Type        string `json:"type"`
}
