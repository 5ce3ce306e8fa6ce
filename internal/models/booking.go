package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	GuestName  string        `gorm:"not null" json:"guest_name"`
	GuestEmail string        `gorm:"not null" json:"guest_email"`
	RoomID     uint          `gorm:"not null;index" json:"room_id"`
	CheckIn    time.Time     `gorm:"not null" json:"check_in"`
	CheckOut   time.Time     `gorm:"not null" json:"check_out"`
	TotalPrice float64       `gorm:"not null" json:"total_price"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Overlaps reports whether the half-open ranges [aIn, aOut) and [bIn, bOut)
// share at least one instant. A stay ending exactly when another begins does
// not overlap, so back-to-back turnover on the same day is allowed. The SQL
// overlap filters in the repository implement the same rule.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// Overlaps reports whether the booking's stay overlaps [checkIn, checkOut).
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut)
}

// Nights returns the number of billable nights between checkIn and checkOut,
// rounding partial days up. Callers guarantee checkOut is after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// TotalPrice computes the price of a stay at the given nightly rate. The
// result is fixed on the booking at admission time; later rate changes on the
// room are not retroactive.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}
