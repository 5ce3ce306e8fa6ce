package repository

import (
	"context"
	"time"

	"github.com/hoteldesk/reservation-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	CountConfirmedOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error)
	FindBookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error)
	UpdateStatusIf(ctx context.Context, tx *gorm.DB, bookingID uint, newStatus, expectedStatus models.BookingStatus) (int64, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Room").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// overlapping applies the half-open overlap rule (models.Overlaps) in SQL:
// [check_in, check_out) intersects [checkIn, checkOut).
func overlapping(checkIn, checkOut time.Time) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	}
}

// CountConfirmedOverlapping counts confirmed bookings for the room that
// overlap the window. Run inside the admission transaction, after the room
// row lock is held.
func (r *bookingRepository) CountConfirmedOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, models.StatusConfirmed).
		Scopes(overlapping(checkIn, checkOut)).
		Count(&count).Error
	return count, err
}

// FindBookedRoomIDs returns the rooms holding at least one confirmed booking
// that overlaps the window, across the whole catalog. Lock-free read; a stale
// result only means a later admission attempt conflicts.
func (r *bookingRepository) FindBookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", models.StatusConfirmed).
		Scopes(overlapping(checkIn, checkOut)).
		Distinct().
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateStatusIf transitions the booking's status only if it currently has
// the expected one, and reports how many rows changed. A zero count under a
// race means another caller got there first.
func (r *bookingRepository) UpdateStatusIf(ctx context.Context, tx *gorm.DB, bookingID uint, newStatus, expectedStatus models.BookingStatus) (int64, error) {
	res := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, expectedStatus).
		Update("status", newStatus)
	return res.RowsAffected, res.Error
}
