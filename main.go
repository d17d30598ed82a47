// Package main car rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     Car rental booking service (users, cars, bookings).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/BriscanCatalin/RentalApp/app/echoServer"
	authctrl "github.com/BriscanCatalin/RentalApp/app/echoServer/controller/auth"
	bookingctrl "github.com/BriscanCatalin/RentalApp/app/echoServer/controller/booking"
	carctrl "github.com/BriscanCatalin/RentalApp/app/echoServer/controller/car"
	userctrl "github.com/BriscanCatalin/RentalApp/app/echoServer/controller/user"
	"github.com/BriscanCatalin/RentalApp/app/echoServer/validation"
	"github.com/BriscanCatalin/RentalApp/config"
	bookingrepo "github.com/BriscanCatalin/RentalApp/repository/booking"
	carrepo "github.com/BriscanCatalin/RentalApp/repository/car"
	userrepo "github.com/BriscanCatalin/RentalApp/repository/user"
	authsvc "github.com/BriscanCatalin/RentalApp/service/auth"
	bookingsvc "github.com/BriscanCatalin/RentalApp/service/booking"
	carsvc "github.com/BriscanCatalin/RentalApp/service/car"
	usersvc "github.com/BriscanCatalin/RentalApp/service/user"
	"github.com/BriscanCatalin/RentalApp/util/database"
	"github.com/BriscanCatalin/RentalApp/util/hash"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	hash.SetCost(cfg.BcryptCost)

	// DB: pgx pool, released on shutdown
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	cr := carrepo.New(db)
	br := bookingrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	us := usersvc.New(ur)
	cs := carsvc.New(cr)
	bs := bookingsvc.New(br)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	carC := &carctrl.Controller{Svc: cs, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		User:    userC,
		Car:     carC,
		Booking: bookingC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
