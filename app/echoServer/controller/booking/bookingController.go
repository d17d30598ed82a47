package booking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bookingsvc "github.com/BriscanCatalin/RentalApp/service/booking"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /bookings
func (ct *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	_, err := ct.Svc.Create(c.Request().Context(), req.toParams())
	if err != nil {
		switch {
		case errors.Is(err, bookingsvc.ErrBadDate):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date, expected YYYY-MM-DD"})
		case errors.Is(err, bookingsvc.ErrIDTaken):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "booking id already exists"})
		case errors.Is(err, bookingsvc.ErrCarNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Car not found"})
		case errors.Is(err, bookingsvc.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("booking create", "err", err, "req_id", rid)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Booking created successfully"})
}

// GET /bookings/:id
func (ct *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	b, err := ct.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, bookingsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		}
		ct.Log.Error("booking detail", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}

// The subject of the token is not cross-checked against :userId; any
// authenticated user may query any user's bookings.

// GET /bookings/user/:userId
func (ct *Controller) ByUser(c echo.Context) error {
	rows, err := ct.Svc.ByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		ct.Log.Error("bookings by user", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /bookings/active/:userId
func (ct *Controller) Active(c echo.Context) error {
	rows, err := ct.Svc.Active(c.Request().Context(), c.Param("userId"))
	if err != nil {
		ct.Log.Error("active bookings", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /bookings/past/:userId
func (ct *Controller) Past(c echo.Context) error {
	rows, err := ct.Svc.Past(c.Request().Context(), c.Param("userId"))
	if err != nil {
		ct.Log.Error("past bookings", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
