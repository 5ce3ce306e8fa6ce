package repository

import (
	"context"

	"github.com/hoteldesk/reservation-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomFilter narrows FindAll. Nil fields mean "don't filter".
type RoomFilter struct {
	Active *bool
	Type   *models.RoomType
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	FindAvailable(ctx context.Context, filter RoomFilter, excludedIDs []uint) ([]models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction, serializing concurrent admissions for the same room.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	q := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// FindAvailable lists rooms matching the filter whose IDs are not in the
// exclusion set, ordered by type then room number for a stable result.
func (r *roomRepository) FindAvailable(ctx context.Context, filter RoomFilter, excludedIDs []uint) ([]models.Room, error) {
	var rooms []models.Room
	q := r.applyFilter(r.db.WithContext(ctx), filter)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}
	if err := q.Order("type ASC, room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) applyFilter(q *gorm.DB, filter RoomFilter) *gorm.DB {
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	return q
}
