package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type BookingController struct {
	service service.BookingService
}

func CreateBookingController(e *echo.Group, service service.BookingService, sessionAuth echo.MiddlewareFunc) {
	c := BookingController{
		service: service,
	}
	e.GET("/bookings", c.GetBookings)
	e.POST("/bookings", c.AddBooking)
	e.PUT("/bookings/:id", c.SetBookingStatus, sessionAuth)
	e.DELETE("/bookings/:id", c.DeleteBooking, sessionAuth)
}

func (c *BookingController) GetBookings(e echo.Context) error {
	data, err := c.service.GetBookings(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}

	return e.JSON(http.StatusOK, dto.BookingsResponse{Bookings: data})
}

func (c *BookingController) AddBooking(e echo.Context) error {
	payload := dto.BookingRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddBooking").Msg("")
	}

	id, err := c.service.AddBooking(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusCreated, dto.CreateBookingResponse{Success: true, ID: id})
}

func (c *BookingController) SetBookingStatus(e echo.Context) error {
	id := e.Param("id")
	payload := dto.BookingStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SetBookingStatus").Msg("")
	}

	err = c.service.SetBookingStatus(e.Request().Context(), id, payload.Booked)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}

func (c *BookingController) DeleteBooking(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteBooking(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}
