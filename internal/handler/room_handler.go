package handler

import (
	"errors"
	"net/http"

	"github.com/hoteldesk/reservation-service/internal/dto"
	"github.com/hoteldesk/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.ReservationService
}

func NewRoomHandler(svc service.ReservationService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("", h.ListRooms)
	rooms.GET("/availability", h.CheckAvailability)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	checkInParam := c.QueryParam("check_in")
	checkOutParam := c.QueryParam("check_out")
	if checkInParam == "" || checkOutParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in and check_out dates are required")
	}

	checkIn, err := parseDate(checkInParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_in date")
	}
	checkOut, err := parseDate(checkOutParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_out date")
	}

	results, err := h.svc.CheckAvailability(c.Request().Context(), checkIn, checkOut, c.QueryParam("type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrInvalidRoomType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	resp := make([]dto.AvailableRoomResponse, len(results))
	for i, r := range results {
		resp[i] = dto.ToAvailableRoomResponse(r)
	}

	return c.JSON(http.StatusOK, resp)
}
