package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hoteldesk/reservation-service/internal/models"
	"github.com/hoteldesk/reservation-service/internal/repository"
	"github.com/hoteldesk/reservation-service/pkg/rabbitmq"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("room not found or inactive")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomUnavailable  = errors.New("room is no longer available for the selected dates, please choose different dates or another room")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrGuestNameMissing = errors.New("guest name is required")
	ErrInvalidEmail     = errors.New("a valid guest email is required")
	ErrInvalidRoomType  = errors.New("invalid room type")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// exclusionViolation is the SQLSTATE Postgres raises when an insert collides
// with the confirmed-stay exclusion constraint (see pkg/database).
const exclusionViolation = "23P01"

type CreateBookingInput struct {
	GuestName  string
	GuestEmail string
	RoomID     uint
	CheckIn    time.Time
	CheckOut   time.Time
}

// RoomAvailability is one row of an availability query result: a free room
// plus the stay length and total price for the queried window.
type RoomAvailability struct {
	Room       models.Room `json:"room"`
	Nights     int         `json:"nights"`
	TotalPrice float64     `json:"total_price"`
}

type ReservationService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	CheckAvailability(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]RoomAvailability, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id uint) (*models.Booking, error)
}

type reservationService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	publisher   *rabbitmq.Publisher
}

func NewReservationService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

func (s *reservationService) ListRooms(ctx context.Context) ([]models.Room, error) {
	active := true
	return s.roomRepo.FindAll(ctx, repository.RoomFilter{Active: &active})
}

func (s *reservationService) CheckAvailability(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]RoomAvailability, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	filter, err := availabilityFilter(roomType)
	if err != nil {
		return nil, err
	}

	// The exclusion set spans the whole catalog; the type filter applies only
	// to the rooms returned, not to which bookings count as conflicts.
	bookedIDs, err := s.bookingRepo.FindBookedRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("find booked rooms: %w", err)
	}

	rooms, err := s.roomRepo.FindAvailable(ctx, filter, bookedIDs)
	if err != nil {
		return nil, fmt.Errorf("find available rooms: %w", err)
	}

	nights := models.Nights(checkIn, checkOut)
	results := make([]RoomAvailability, len(rooms))
	for i, room := range rooms {
		results[i] = RoomAvailability{
			Room:       room,
			Nights:     nights,
			TotalPrice: float64(nights) * room.PricePerNight,
		}
	}
	return results, nil
}

func availabilityFilter(roomType string) (repository.RoomFilter, error) {
	active := true
	filter := repository.RoomFilter{Active: &active}
	if roomType == "" || strings.EqualFold(roomType, "All") {
		return filter, nil
	}
	t := models.RoomType(roomType)
	if !t.Valid() {
		return filter, ErrInvalidRoomType
	}
	filter.Type = &t
	return filter, nil
}

func (s *reservationService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	guestName := strings.TrimSpace(input.GuestName)
	if guestName == "" {
		return nil, ErrGuestNameMissing
	}
	guestEmail := strings.ToLower(strings.TrimSpace(input.GuestEmail))
	if !emailPattern.MatchString(guestEmail) {
		return nil, ErrInvalidEmail
	}
	if !input.CheckOut.After(input.CheckIn) {
		return nil, ErrInvalidDateRange
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room row — serializes admissions per room, so two
		// overlapping requests for the same room cannot both pass the check.
		// Different rooms don't contend.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if !room.IsActive {
			return ErrRoomNotFound
		}

		// 2. No confirmed stay may overlap the requested window.
		overlaps, err := s.bookingRepo.CountConfirmedOverlapping(ctx, tx, room.ID, input.CheckIn, input.CheckOut)
		if err != nil {
			return err
		}
		if overlaps > 0 {
			return ErrRoomUnavailable
		}

		// 3. Price is fixed now, from the rate read under the lock.
		booking := &models.Booking{
			GuestName:  guestName,
			GuestEmail: guestEmail,
			RoomID:     room.ID,
			CheckIn:    input.CheckIn,
			CheckOut:   input.CheckOut,
			TotalPrice: models.TotalPrice(input.CheckIn, input.CheckOut, room.PricePerNight),
			Status:     models.StatusConfirmed,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if isExclusionViolation(err) {
				return ErrRoomUnavailable
			}
			return err
		}

		booking.Room = room
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}

	return result, nil
}

func (s *reservationService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *reservationService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

func (s *reservationService) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}

		// Conditional update so a concurrent cancel of the same booking
		// loses cleanly instead of silently succeeding twice.
		rows, err := s.bookingRepo.UpdateStatusIf(ctx, tx, id, models.StatusCancelled, models.StatusConfirmed)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAlreadyCancelled
		}

		booking.Status = models.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", result)
	}

	return result, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolation
}
