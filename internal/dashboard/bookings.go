package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/curavet/clinic-admin-service/internal/domain"
)

// BookingStore drives the bookings tab.
type BookingStore struct {
	client *Client
	toasts *Toaster

	mu          sync.RWMutex
	state       State
	bookings    []domain.Booking
	searchQuery string
	updating    bool
	lastError   error
}

func NewBookingStore(client *Client, toasts *Toaster) *BookingStore {
	return &BookingStore{
		client: client,
		toasts: toasts,
	}
}

func (s *BookingStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	bookings, err := s.client.GetBookings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.lastError = err
		return err
	}

	s.state = StateLoaded
	s.lastError = nil
	s.bookings = bookings
	return nil
}

// ToggleBooked flips a booking's confirmation status.
func (s *BookingStore) ToggleBooked(ctx context.Context, id string, booked bool) error {
	s.mu.Lock()
	s.updating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.updating = false
		s.mu.Unlock()
	}()

	if err := s.client.SetBookingStatus(ctx, id, booked); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	if booked {
		s.toasts.Show("Booking confirmed", ToastSuccess)
	} else {
		s.toasts.Show("Booking reopened", ToastSuccess)
	}

	return s.Refresh(ctx)
}

func (s *BookingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.updating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.updating = false
		s.mu.Unlock()
	}()

	if err := s.client.DeleteBooking(ctx, id); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.toasts.Show("Booking deleted", ToastSuccess)
	return s.Refresh(ctx)
}

func (s *BookingStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// Filtered matches the query against name, phone, purpose and visit type.
func (s *BookingStore) Filtered() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(s.searchQuery))
	if query == "" {
		return append([]domain.Booking(nil), s.bookings...)
	}

	filtered := make([]domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if strings.Contains(strings.ToLower(booking.Name), query) ||
			strings.Contains(strings.ToLower(booking.Phone), query) ||
			strings.Contains(strings.ToLower(booking.Purpose), query) ||
			strings.Contains(strings.ToLower(booking.VisitType), query) {
			filtered = append(filtered, booking)
		}
	}

	return filtered
}

// PendingCount counts bookings awaiting confirmation.
func (s *BookingStore) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, booking := range s.bookings {
		if !booking.Booked {
			count++
		}
	}
	return count
}

// EmergencyCount counts unconfirmed emergency bookings.
func (s *BookingStore) EmergencyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, booking := range s.bookings {
		if booking.IsEmergency && !booking.Booked {
			count++
		}
	}
	return count
}

func (s *BookingStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *BookingStore) Updating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updating
}

func (s *BookingStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
