package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BriscanCatalin/RentalApp/model"
	userrepo "github.com/BriscanCatalin/RentalApp/repository/user"
	"github.com/BriscanCatalin/RentalApp/util/hash"
	jwtutil "github.com/BriscanCatalin/RentalApp/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("email already exists")
	ErrInvalidCreds = errors.New("invalid credentials")
)

type Service interface {
	Signup(ctx context.Context, req model.SignupReq) (*model.User, error)
	Login(ctx context.Context, req model.LoginReq) (string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.User, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if isDuplicateEmail(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (string, error) {
	u, err := s.ur.ByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCreds
		}
		return "", err
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, u.ID, 24)
}

func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)
		return strings.Contains(cn, "email") || strings.Contains(msg, "email")
	}
	return false
}
