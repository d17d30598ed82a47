package car

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	carsvc "github.com/BriscanCatalin/RentalApp/service/car"
)

type Controller struct {
	Svc carsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /cars/:id
func (ct *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	car, err := ct.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, carsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Car not found"})
		}
		ct.Log.Error("car detail", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, car)
}

// GET /cars/type/:type
func (ct *Controller) ByType(c echo.Context) error {
	cars, err := ct.Svc.ByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		ct.Log.Error("cars by type", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cars)
}

// GET /cars/popular
func (ct *Controller) Popular(c echo.Context) error {
	cars, err := ct.Svc.Popular(c.Request().Context())
	if err != nil {
		ct.Log.Error("popular cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cars)
}

// GET /cars/recommended
func (ct *Controller) Recommended(c echo.Context) error {
	cars, err := ct.Svc.Recommended(c.Request().Context())
	if err != nil {
		ct.Log.Error("recommended cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cars)
}

// POST /cars/filter
func (ct *Controller) Filter(c echo.Context) error {
	var req FilterCarsReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	cars, err := ct.Svc.Search(c.Request().Context(), req.toFilter())
	if err != nil {
		ct.Log.Error("filter cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cars)
}
