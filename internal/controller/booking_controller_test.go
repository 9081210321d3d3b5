package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/pkg/response"
)

func (s *ControllerTestSuite) Test_CreateBooking() {
	type TestCase struct {
		Name           string
		Request        dto.BookingRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.BookingRequest{
				Name:          "Jamie",
				Phone:         "08123456789",
				Purpose:       "Vaccination",
				PreferredDate: "2026-09-01",
				PreferredTime: "10:00",
			},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name: "Missing phone",
			Request: dto.BookingRequest{
				Name:    "Jamie",
				Purpose: "Vaccination",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Missing purpose",
			Request: dto.BookingRequest{
				Name:  "Jamie",
				Phone: "08123456789",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			// Booking creation is public: the marketing site posts it directly.
			resp := s.doJSON(http.MethodPost, "/api/bookings", tc.Request, nil)
			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			if tc.ExpectedStatus != http.StatusCreated {
				resp.Body.Close()
				return
			}

			var body dto.CreateBookingResponse
			s.decodeBody(resp, &body)
			s.True(body.Success)
			s.NotEmpty(body.ID)
		})
	}
}

func (s *ControllerTestSuite) Test_CreateBookingAlwaysStartsPending() {
	resp := s.doJSON(http.MethodPost, "/api/bookings", dto.BookingRequest{
		Name:    "Jamie",
		Phone:   "08123456789",
		Purpose: "Vaccination",
		Booked:  true,
	}, nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body dto.CreateBookingResponse
	s.decodeBody(resp, &body)
	s.False(s.bookingRepo.bookings[body.ID].Booked)
}

func (s *ControllerTestSuite) Test_BookingStatusMutationsRequireSession() {
	resp := s.doJSON(http.MethodPut, "/api/bookings/abc", dto.BookingStatusRequest{Booked: true}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.doJSON(http.MethodDelete, "/api/bookings/abc", nil, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_SetBookingStatus() {
	createResp := s.doJSON(http.MethodPost, "/api/bookings", dto.BookingRequest{
		Name:    "Jamie",
		Phone:   "08123456789",
		Purpose: "Vaccination",
	}, nil)
	var created dto.CreateBookingResponse
	s.decodeBody(createResp, &created)

	resp := s.doJSON(http.MethodPut, "/api/bookings/"+created.ID, dto.BookingStatusRequest{Booked: true}, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.SuccessResponse
	s.decodeBody(resp, &body)
	s.True(body.Success)
	s.True(s.bookingRepo.bookings[created.ID].Booked)

	resp = s.doJSON(http.MethodPut, "/api/bookings/unknown", dto.BookingStatusRequest{Booked: true}, s.sessionCookie())
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_DeleteBooking() {
	createResp := s.doJSON(http.MethodPost, "/api/bookings", dto.BookingRequest{
		Name:    "Jamie",
		Phone:   "08123456789",
		Purpose: "Vaccination",
	}, nil)
	var created dto.CreateBookingResponse
	s.decodeBody(createResp, &created)

	resp := s.doJSON(http.MethodDelete, "/api/bookings/"+created.ID, nil, s.sessionCookie())
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Empty(s.bookingRepo.bookings)
}

func (s *ControllerTestSuite) Test_GetBookings() {
	createResp := s.doJSON(http.MethodPost, "/api/bookings", dto.BookingRequest{
		Name:    "Jamie",
		Phone:   "08123456789",
		Purpose: "Vaccination",
	}, nil)
	createResp.Body.Close()

	resp := s.doJSON(http.MethodGet, "/api/bookings", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.BookingsResponse
	s.decodeBody(resp, &body)
	s.Require().Len(body.Bookings, 1)
	s.Equal("Jamie", body.Bookings[0].Name)
}
