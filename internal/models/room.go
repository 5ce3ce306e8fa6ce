package models

import "time"

type RoomType string

const (
	TypeSingle RoomType = "Single"
	TypeDouble RoomType = "Double"
	TypeSuite  RoomType = "Suite"
	TypeDeluxe RoomType = "Deluxe"
)

// RoomTypes lists every valid room category, in display order.
var RoomTypes = []RoomType{TypeSingle, TypeDouble, TypeSuite, TypeDeluxe}

func (t RoomType) Valid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeDeluxe:
		return true
	}
	return false
}

type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomNumber    string    `gorm:"uniqueIndex;not null" json:"room_number"`
	Type          RoomType  `gorm:"type:varchar(20);not null" json:"type"`
	PricePerNight float64   `gorm:"not null" json:"price_per_night"`
	MaxOccupancy  int       `gorm:"not null" json:"max_occupancy"`
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
