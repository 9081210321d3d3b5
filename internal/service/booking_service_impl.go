package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/curavet/clinic-admin-service/config"
	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/metrics"
	"github.com/curavet/clinic-admin-service/internal/repository"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/utils"
)

type BookingServiceImpl struct {
	bookingRepo repository.BookingRepository
	smtpConfig  config.SMTPConfig
}

func CreateBookingService(bookingRepo repository.BookingRepository, smtpConfig config.SMTPConfig) BookingService {
	return &BookingServiceImpl{bookingRepo: bookingRepo, smtpConfig: smtpConfig}
}

func (s *BookingServiceImpl) GetBookings(ctx context.Context) (data []domain.Booking, err error) {
	return s.bookingRepo.GetBookings(ctx)
}

func (s *BookingServiceImpl) AddBooking(ctx context.Context, req dto.BookingRequest) (id string, err error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	purpose := strings.TrimSpace(req.Purpose)

	if name == "" {
		return "", errs.NewValidationError("name", "Name is required")
	}
	if phone == "" {
		return "", errs.NewValidationError("phone", "Phone number is required")
	}
	if purpose == "" {
		return "", errs.NewValidationError("purpose", "Purpose is required")
	}

	// Booked always starts false no matter what the payload claims.
	booking := domain.Booking{
		Name:          name,
		Phone:         phone,
		Email:         strings.TrimSpace(req.Email),
		Purpose:       purpose,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		VisitType:     req.VisitType,
		IsEmergency:   req.IsEmergency,
		Booked:        false,
		CreatedAt:     time.Now().UTC(),
	}

	bookingID, err := s.bookingRepo.AddBooking(ctx, booking)
	if err != nil {
		return "", err
	}

	metrics.BookingsCreated.Inc()

	if booking.IsEmergency {
		go s.notifyEmergency(booking)
	}

	return bookingID.Hex(), nil
}

func (s *BookingServiceImpl) SetBookingStatus(ctx context.Context, id string, booked bool) (err error) {
	return s.bookingRepo.SetBookingStatus(ctx, id, booked)
}

func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, id string) (err error) {
	return s.bookingRepo.DeleteBooking(ctx, id)
}

// notifyEmergency alerts the clinic inbox about an emergency booking.
// Best-effort: a failed or unconfigured SMTP setup never affects the
// stored booking.
func (s *BookingServiceImpl) notifyEmergency(booking domain.Booking) {
	if s.smtpConfig.Server == "" || s.smtpConfig.Recipient == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.smtpConfig.Sender)
	message.SetHeader("To", s.smtpConfig.Recipient)
	message.SetHeader("Subject", "Emergency booking: "+booking.Name)
	message.SetBody("text/plain", fmt.Sprintf("Emergency booking received.\n\nName: %s\nPhone: %s\nPurpose: %s\nPreferred: %s %s",
		booking.Name, booking.Phone, booking.Purpose, booking.PreferredDate, booking.PreferredTime))

	err := utils.SendEmail(message, s.smtpConfig.Sender, s.smtpConfig.Password, s.smtpConfig.Server, s.smtpConfig.Port)
	if err != nil {
		log.Error().Err(err).Str("component", "notifyEmergency").Msg("")
	}
}
