package carsvc

import (
	"context"
	"errors"
	"math/rand"

	"github.com/jackc/pgx/v5"

	"github.com/BriscanCatalin/RentalApp/model"
	carrepo "github.com/BriscanCatalin/RentalApp/repository/car"
)

const (
	popularMinRating = 4.8
	popularLimit     = 5
	recommendedCount = 4
)

var ErrNotFound = errors.New("car not found")

type Filter = carrepo.Filter

type Service interface {
	Detail(ctx context.Context, id string) (*model.Car, error)
	ByType(ctx context.Context, carType string) ([]model.Car, error)
	Popular(ctx context.Context) ([]model.Car, error)
	Recommended(ctx context.Context) ([]model.Car, error)
	Search(ctx context.Context, f Filter) ([]model.Car, error)
}

type service struct{ cr carrepo.Repo }

func New(cr carrepo.Repo) Service { return &service{cr} }

func (s *service) Detail(ctx context.Context, id string) (*model.Car, error) {
	c, err := s.cr.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) ByType(ctx context.Context, carType string) ([]model.Car, error) {
	return s.cr.ByType(ctx, carType)
}

func (s *service) Popular(ctx context.Context) ([]model.Car, error) {
	return s.cr.TopRated(ctx, popularMinRating, popularLimit)
}

// Recommended returns min(4, n) cars drawn uniformly without replacement.
// The sample is re-drawn on every call.
func (s *service) Recommended(ctx context.Context) ([]model.Car, error) {
	cars, err := s.cr.All(ctx)
	if err != nil {
		return nil, err
	}
	n := recommendedCount
	if len(cars) < n {
		n = len(cars)
	}
	out := make([]model.Car, 0, n)
	for _, i := range rand.Perm(len(cars))[:n] {
		out = append(out, cars[i])
	}
	return out, nil
}

func (s *service) Search(ctx context.Context, f Filter) ([]model.Car, error) {
	return s.cr.Search(ctx, f)
}
