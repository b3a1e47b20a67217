// Command seed wipes the database and loads a working data set: one admin
// account, a handful of catways, and a few reservations. Intended for
// development and demo environments only.
package main

import (
	"context"
	"time"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
	"github.com/port-russell/marina-api/internal/core/service"
	"github.com/port-russell/marina-api/internal/infrastructure/config"
	"github.com/port-russell/marina-api/internal/infrastructure/db/mongo"
	"github.com/port-russell/marina-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unreachable")
	}
	defer client.Disconnect(context.Background())

	for _, name := range []string{"users", "catways", "reservations"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to drop collection")
		}
	}

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	users := service.NewUserService(mongo.NewUserRepository(db), log)
	catways := service.NewCatwayService(mongo.NewCatwayRepository(db), log)
	reservations := service.NewReservationService(mongo.NewReservationRepository(db), log)

	admin, err := users.CreateUser(ctx, ports.CreateUserInput{
		Name:     "Administrateur",
		Email:    "admin@port.com",
		Password: "admin123",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}
	log.Info().Str("email", admin.Email).Msg("admin user created")

	seedCatways := []ports.CreateCatwayInput{
		{CatwayNumber: "A1", Type: string(domain.TypeLong), CatwayState: "Bon état"},
		{CatwayNumber: "A2", Type: string(domain.TypeLong), CatwayState: "Bon état"},
		{CatwayNumber: "A3", Type: string(domain.TypeShort), CatwayState: "En maintenance"},
		{CatwayNumber: "B1", Type: string(domain.TypeLong), CatwayState: "Bon état"},
		{CatwayNumber: "B2", Type: string(domain.TypeShort), CatwayState: "Bon état"},
		{CatwayNumber: "C1", Type: string(domain.TypeLong), CatwayState: "Bon état"},
	}
	for _, input := range seedCatways {
		if _, err := catways.CreateCatway(ctx, input); err != nil {
			log.Fatal().Err(err).Str("catway_number", input.CatwayNumber).Msg("failed to create catway")
		}
	}
	log.Info().Int("count", len(seedCatways)).Msg("catways created")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	nextWeek := today.AddDate(0, 0, 7)

	seedReservations := []ports.CreateReservationInput{
		{CatwayNumber: "A1", ClientName: "Jean Dupont", BoatName: "Sea Breeze", CheckIn: today, CheckOut: nextWeek},
		{CatwayNumber: "B1", ClientName: "Marie Martin", BoatName: "Ocean Dream", CheckIn: today, CheckOut: nextWeek},
		{CatwayNumber: "C1", ClientName: "Pierre Durand", BoatName: "Wind Rider", CheckIn: today, CheckOut: nextWeek},
	}
	for _, input := range seedReservations {
		if _, err := reservations.CreateReservation(ctx, input); err != nil {
			log.Fatal().Err(err).Str("catway_number", input.CatwayNumber).Msg("failed to create reservation")
		}
	}
	log.Info().Int("count", len(seedReservations)).Msg("reservations created")

	log.Info().Msg("database seeded; login with admin@port.com / admin123")
}
