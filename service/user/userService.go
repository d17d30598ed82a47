package usersvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BriscanCatalin/RentalApp/model"
	userrepo "github.com/BriscanCatalin/RentalApp/repository/user"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already exists")
)

type Service interface {
	Current(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) Current(ctx context.Context, id string) (*model.User, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &normalized
	}
	u, err := s.ur.UpdateFields(ctx, id, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}
