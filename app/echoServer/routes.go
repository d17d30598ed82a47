package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/BriscanCatalin/RentalApp/app/echoServer/controller/auth"
	"github.com/BriscanCatalin/RentalApp/app/echoServer/controller/booking"
	"github.com/BriscanCatalin/RentalApp/app/echoServer/controller/car"
	"github.com/BriscanCatalin/RentalApp/app/echoServer/controller/user"
)

type C struct {
	Auth    *auth.Controller
	User    *user.Controller
	Car     *car.Controller
	Booking *booking.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/signup", c.Auth.Signup)
	e.POST("/login", c.Auth.Login)

	e.GET("/cars/popular", c.Car.Popular)
	e.GET("/cars/recommended", c.Car.Recommended)
	e.GET("/cars/type/:type", c.Car.ByType)
	e.GET("/cars/:id", c.Car.Detail)
	e.POST("/cars/filter", c.Car.Filter)

	// Protected: bearer token required before any persistence work happens.
	protected := e.Group("")
	protected.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		TokenLookup:   "header:Authorization:Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		},
	}))

	protected.GET("/users/current", c.User.Current)
	protected.PUT("/users/current", c.User.Update)

	protected.POST("/bookings", c.Booking.Create)
	protected.GET("/bookings/user/:userId", c.Booking.ByUser)
	protected.GET("/bookings/active/:userId", c.Booking.Active)
	protected.GET("/bookings/past/:userId", c.Booking.Past)
	protected.GET("/bookings/:id", c.Booking.Detail)
}
