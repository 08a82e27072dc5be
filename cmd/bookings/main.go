package main

import (
	"staybook/internal/bookings/handler"
	"staybook/internal/bookings/repository"
	"staybook/internal/bookings/service"
	"staybook/internal/bookings/validator"
	"staybook/internal/events"
	"staybook/pkg/app"
	"staybook/pkg/config"
	"staybook/pkg/contracts"
	"staybook/pkg/kafka"
	kafka_config "staybook/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	publisher := initPublisher(cfg)
	bookingHandler, healthHandler := initHandlers(cfg, publisher)

	application := app.NewApplication(cfg)
	application.SetApp(bookingHandler, healthHandler)
	application.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNopPublisher()
	}

	kcfg := kafka_config.Load()
	if err := kcfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kcfg, cfg.KafkaEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaEventsTopic, "brokers", kcfg.Brokers)
	return events.NewKafkaPublisher(producer, ServiceName, cfg.Log)
}

func initHandlers(cfg *config.Config, publisher events.Publisher) (contracts.Handler, contracts.Handler) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	dateRepo := repository.NewMongoBookingDateRepository(cfg)

	bookingService := service.NewBookingService(bookingRepo, dateRepo, bookingValidator, publisher, cfg)

	bookingHandler := handler.NewBookingHandler(bookingService, cfg.Log)
	healthHandler := handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log)
	return bookingHandler, healthHandler
}
