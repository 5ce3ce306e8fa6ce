package service

import (
	"context"
	"testing"
	"time"

	"github.com/hoteldesk/reservation-service/internal/models"
	"github.com/hoteldesk/reservation-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	findAllFn       func(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error)
	findAvailableFn func(ctx context.Context, filter repository.RoomFilter, excludedIDs []uint) ([]models.Room, error)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindAll(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	return m.findAllFn(ctx, filter)
}
func (m *mockRoomRepo) FindAvailable(ctx context.Context, filter repository.RoomFilter, excludedIDs []uint) ([]models.Room, error) {
	return m.findAvailableFn(ctx, filter, excludedIDs)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	findBookedRoomIDsFn func(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindAll(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) CountConfirmedOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) FindBookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error) {
	return m.findBookedRoomIDsFn(ctx, checkIn, checkOut)
}
func (m *mockBookingRepo) UpdateStatusIf(ctx context.Context, tx *gorm.DB, bookingID uint, newStatus, expectedStatus models.BookingStatus) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		GuestName:  "Alice Johnson",
		GuestEmail: "alice@example.com",
		RoomID:     1,
		CheckIn:    day(1),
		CheckOut:   day(4),
	}
}

func TestCreateBooking_EmptyGuestName(t *testing.T) {
	svc := NewReservationService(nil, nil, nil)

	input := validInput()
	input.GuestName = "   "

	booking, err := svc.CreateBooking(context.Background(), input)

	assert.ErrorIs(t, err, ErrGuestNameMissing)
	assert.Nil(t, booking)
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	svc := NewReservationService(nil, nil, nil)

	for _, email := range []string{"", "not-an-email", "missing@tld", "spaces in@example.com"} {
		input := validInput()
		input.GuestEmail = email

		booking, err := svc.CreateBooking(context.Background(), input)

		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
		assert.Nil(t, booking)
	}
}

func TestCreateBooking_CheckOutNotAfterCheckIn(t *testing.T) {
	svc := NewReservationService(nil, nil, nil)

	input := validInput()
	input.CheckOut = input.CheckIn

	booking, err := svc.CreateBooking(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, booking)

	input.CheckOut = input.CheckIn.AddDate(0, 0, -1)
	booking, err = svc.CreateBooking(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, booking)
}

func TestCheckAvailability_InvalidDateRange(t *testing.T) {
	svc := NewReservationService(nil, nil, nil)

	_, err := svc.CheckAvailability(context.Background(), day(4), day(4), "")

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCheckAvailability_InvalidRoomType(t *testing.T) {
	svc := NewReservationService(nil, nil, nil)

	_, err := svc.CheckAvailability(context.Background(), day(1), day(4), "Penthouse")

	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestCheckAvailability_ExcludesBookedRooms(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findBookedRoomIDsFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error) {
			return []uint{2}, nil
		},
	}
	roomRepo := &mockRoomRepo{
		findAvailableFn: func(ctx context.Context, filter repository.RoomFilter, excludedIDs []uint) ([]models.Room, error) {
			assert.Equal(t, []uint{2}, excludedIDs)
			require.NotNil(t, filter.Active)
			assert.True(t, *filter.Active)
			assert.Nil(t, filter.Type)
			return []models.Room{
				{ID: 1, RoomNumber: "101", Type: models.TypeSingle, PricePerNight: 80},
				{ID: 3, RoomNumber: "201", Type: models.TypeDouble, PricePerNight: 130},
			}, nil
		},
	}

	svc := NewReservationService(roomRepo, bookingRepo, nil)

	results, err := svc.CheckAvailability(context.Background(), day(1), day(4), "All")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].Nights)
	assert.Equal(t, 240.0, results[0].TotalPrice)
	assert.Equal(t, 390.0, results[1].TotalPrice)
}

func TestCheckAvailability_TypeFilter(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findBookedRoomIDsFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error) {
			return nil, nil
		},
	}
	roomRepo := &mockRoomRepo{
		findAvailableFn: func(ctx context.Context, filter repository.RoomFilter, excludedIDs []uint) ([]models.Room, error) {
			require.NotNil(t, filter.Type)
			assert.Equal(t, models.TypeSuite, *filter.Type)
			return nil, nil
		},
	}

	svc := NewReservationService(roomRepo, bookingRepo, nil)

	results, err := svc.CheckAvailability(context.Background(), day(1), day(4), "Suite")

	require.NoError(t, err)
	assert.Empty(t, results)
}
