package dto

import (
	"time"

	"github.com/hoteldesk/reservation-service/internal/models"
	"github.com/hoteldesk/reservation-service/internal/service"
)

type RoomResponse struct {
	ID            uint            `json:"id"`
	RoomNumber    string          `json:"room_number"`
	Type          models.RoomType `json:"type"`
	PricePerNight float64         `json:"price_per_night"`
	MaxOccupancy  int             `json:"max_occupancy"`
	Amenities     []string        `json:"amenities"`
	IsActive      bool            `json:"is_active"`
}

type AvailableRoomResponse struct {
	RoomResponse
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

type BookingResponse struct {
	ID         uint                 `json:"id"`
	GuestName  string               `json:"guest_name"`
	GuestEmail string               `json:"guest_email"`
	RoomID     uint                 `json:"room_id"`
	CheckIn    time.Time            `json:"check_in"`
	CheckOut   time.Time            `json:"check_out"`
	TotalPrice float64              `json:"total_price"`
	Status     models.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	Room       *RoomResponse        `json:"room,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		MaxOccupancy:  r.MaxOccupancy,
		Amenities:     r.Amenities,
		IsActive:      r.IsActive,
	}
}

func ToAvailableRoomResponse(a service.RoomAvailability) AvailableRoomResponse {
	return AvailableRoomResponse{
		RoomResponse: ToRoomResponse(&a.Room),
		Nights:       a.Nights,
		TotalPrice:   a.TotalPrice,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
	if b.Room != nil {
		room := ToRoomResponse(b.Room)
		resp.Room = &room
	}
	return resp
}
