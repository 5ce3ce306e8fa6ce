package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/hoteldesk/reservation-service/config"
	"github.com/hoteldesk/reservation-service/internal/handler"
	"github.com/hoteldesk/reservation-service/internal/middleware"
	"github.com/hoteldesk/reservation-service/internal/repository"
	"github.com/hoteldesk/reservation-service/internal/service"
	"github.com/hoteldesk/reservation-service/pkg/database"
	"github.com/hoteldesk/reservation-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without a broker the service still takes
	// bookings, it just doesn't notify downstream consumers.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, booking events will not be published")
	}

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Service
	reservationSvc := service.NewReservationService(roomRepo, bookingRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = &requestValidator{validator: validator.New()}
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewRoomHandler(reservationSvc).RegisterRoutes(e)
	handler.NewBookingHandler(reservationSvc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
