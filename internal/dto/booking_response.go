package dto

import "github.com/curavet/clinic-admin-service/internal/domain"

type BookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

type CreateBookingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
