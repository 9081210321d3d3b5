package dto

type BookingRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Purpose       string `json:"purpose"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	VisitType     string `json:"visitType"`
	IsEmergency   bool   `json:"isEmergency"`
	// Booked is accepted but ignored: a new booking always starts pending.
	Booked bool `json:"booked"`
}

type BookingStatusRequest struct {
	Booked bool `json:"booked"`
}
