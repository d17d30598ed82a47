package bookingsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BriscanCatalin/RentalApp/model"
	bookingrepo "github.com/BriscanCatalin/RentalApp/repository/booking"
)

var (
	ErrNotFound     = errors.New("booking not found")
	ErrBadDate      = errors.New("invalid date")
	ErrIDTaken      = errors.New("booking id already exists")
	ErrCarNotFound  = errors.New("car not found")
	ErrUserNotFound = errors.New("user not found")
)

// CreateParams is the validated create payload. ID is caller-supplied and
// must be unique.
type CreateParams struct {
	ID         string
	CarID      string
	UserID     string
	StartDate  string
	EndDate    string
	TotalPrice float64
	Status     string
}

type Service interface {
	Create(ctx context.Context, p CreateParams) (*model.Booking, error)
	Detail(ctx context.Context, id string) (*model.Booking, error)
	ByUser(ctx context.Context, userID string) ([]model.Booking, error)
	Active(ctx context.Context, userID string) ([]model.Booking, error)
	Past(ctx context.Context, userID string) ([]model.Booking, error)
}

type service struct{ br bookingrepo.Repo }

func New(br bookingrepo.Repo) Service { return &service{br} }

func (s *service) Create(ctx context.Context, p CreateParams) (*model.Booking, error) {
	start, err := model.ParseDate(p.StartDate)
	if err != nil {
		return nil, ErrBadDate
	}
	end, err := model.ParseDate(p.EndDate)
	if err != nil {
		return nil, ErrBadDate
	}

	b := &model.Booking{
		ID:         p.ID,
		CarID:      p.CarID,
		UserID:     p.UserID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: p.TotalPrice,
		Status:     p.Status,
	}
	if err := s.br.Create(ctx, b); err != nil {
		if derr := mapConstraintErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return b, nil
}

func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrIDTaken
	case pgerrcode.ForeignKeyViolation:
		cn := strings.ToLower(pgErr.ConstraintName)
		if strings.Contains(cn, "car") {
			return ErrCarNotFound
		}
		if strings.Contains(cn, "user") {
			return ErrUserNotFound
		}
	}
	return nil
}

func (s *service) Detail(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.br.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) ByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return s.br.ByUser(ctx, userID)
}

func (s *service) Active(ctx context.Context, userID string) ([]model.Booking, error) {
	return s.br.ByUserAndStatuses(ctx, userID, []string{model.BookingConfirmed, model.BookingActive})
}

func (s *service) Past(ctx context.Context, userID string) ([]model.Booking, error) {
	return s.br.ByUserAndStatuses(ctx, userID, []string{model.BookingCompleted})
}
