package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/BriscanCatalin/RentalApp/app/echoServer/jwtx"
	"github.com/BriscanCatalin/RentalApp/model"
	usersvc "github.com/BriscanCatalin/RentalApp/service/user"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /users/current
func (ct *Controller) Current(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	u, err := ct.Svc.Current(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, usersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		ct.Log.Error("current user", "err", err, "uid", uid)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /users/current
func (ct *Controller) Update(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req model.UpdateUserReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	u, err := ct.Svc.Update(c.Request().Context(), uid, req)
	if err != nil {
		switch {
		case errors.Is(err, usersvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		case errors.Is(err, usersvc.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already exists"})
		default:
			ct.Log.Error("update user", "err", err, "uid", uid)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User updated successfully",
		"user":    u,
	})
}
