package main

import (
	"log"
	"time"

	"github.com/hoteldesk/reservation-service/config"
	"github.com/hoteldesk/reservation-service/internal/models"
	"github.com/hoteldesk/reservation-service/pkg/database"
)

var rooms = []models.Room{
	// Singles
	{RoomNumber: "101", Type: models.TypeSingle, PricePerNight: 80, MaxOccupancy: 1, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning"}, IsActive: true},
	{RoomNumber: "102", Type: models.TypeSingle, PricePerNight: 85, MaxOccupancy: 1, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Fridge"}, IsActive: true},
	{RoomNumber: "103", Type: models.TypeSingle, PricePerNight: 90, MaxOccupancy: 1, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Work Desk"}, IsActive: true},
	// Doubles
	{RoomNumber: "201", Type: models.TypeDouble, PricePerNight: 130, MaxOccupancy: 2, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Fridge"}, IsActive: true},
	{RoomNumber: "202", Type: models.TypeDouble, PricePerNight: 140, MaxOccupancy: 2, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Coffee Maker", "Mini Fridge"}, IsActive: true},
	{RoomNumber: "203", Type: models.TypeDouble, PricePerNight: 135, MaxOccupancy: 2, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Balcony"}, IsActive: true},
	// Suites
	{RoomNumber: "301", Type: models.TypeSuite, PricePerNight: 250, MaxOccupancy: 4, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Living Area", "Balcony"}, IsActive: true},
	{RoomNumber: "302", Type: models.TypeSuite, PricePerNight: 275, MaxOccupancy: 4, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Living Area", "Jacuzzi"}, IsActive: true},
	{RoomNumber: "303", Type: models.TypeSuite, PricePerNight: 260, MaxOccupancy: 3, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Living Area"}, IsActive: true},
	// Deluxe
	{RoomNumber: "401", Type: models.TypeDeluxe, PricePerNight: 350, MaxOccupancy: 3, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Jacuzzi", "Ocean View", "Butler Service"}, IsActive: true},
	{RoomNumber: "402", Type: models.TypeDeluxe, PricePerNight: 380, MaxOccupancy: 4, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Jacuzzi", "Ocean View", "Butler Service", "Private Pool"}, IsActive: true},
	{RoomNumber: "403", Type: models.TypeDeluxe, PricePerNight: 360, MaxOccupancy: 3, Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Jacuzzi", "Mountain View", "Butler Service"}, IsActive: true},
}

type seedBooking struct {
	guestName  string
	guestEmail string
	roomNumber string
	checkIn    int // days from today
	checkOut   int
}

var bookings = []seedBooking{
	{"Alice Johnson", "alice@example.com", "101", 2, 5},
	{"Bob Smith", "bob@example.com", "201", 1, 4},
	{"Carol Davis", "carol@example.com", "301", 7, 10},
	{"Daniel Lee", "daniel@example.com", "401", 5, 8},
	{"Emma Wilson", "emma@example.com", "202", 15, 20},
	{"Frank Garcia", "frank@example.com", "102", 10, 13},
}

// futureDate returns a date n days from now with the 2 PM check-in time.
func futureDate(daysFromNow int) time.Time {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, time.Local)
	return d.AddDate(0, 0, daysFromNow)
}

func main() {
	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	// Clear existing data
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	log.Println("Cleared existing rooms and bookings")

	roomsByNumber := make(map[string]*models.Room, len(rooms))
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatalf("failed to insert room %s: %v", rooms[i].RoomNumber, err)
		}
		roomsByNumber[rooms[i].RoomNumber] = &rooms[i]
	}
	log.Printf("Inserted %d rooms", len(rooms))

	for _, b := range bookings {
		room := roomsByNumber[b.roomNumber]
		checkIn := futureDate(b.checkIn)
		checkOut := futureDate(b.checkOut)

		booking := models.Booking{
			GuestName:  b.guestName,
			GuestEmail: b.guestEmail,
			RoomID:     room.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalPrice: models.TotalPrice(checkIn, checkOut, room.PricePerNight),
			Status:     models.StatusConfirmed,
		}
		if err := db.Create(&booking).Error; err != nil {
			log.Fatalf("failed to insert booking for %s: %v", b.guestName, err)
		}
	}
	log.Printf("Inserted %d bookings", len(bookings))
	log.Println("Database seeded successfully")
}
