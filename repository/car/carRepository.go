package carrepo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/BriscanCatalin/RentalApp/model"
	"github.com/BriscanCatalin/RentalApp/util/database"
)

// Filter holds independently optional car search constraints. Zero values
// mean "not filtered".
type Filter struct {
	Type         string
	Transmission string
	FuelType     string
	PriceRange   []float64 // [min, max]
	Seats        int
	SearchQuery  string
}

type Repo interface {
	ByID(ctx context.Context, id string) (*model.Car, error)
	ByType(ctx context.Context, carType string) ([]model.Car, error)
	TopRated(ctx context.Context, minRating float64, limit int) ([]model.Car, error)
	All(ctx context.Context) ([]model.Car, error)
	Search(ctx context.Context, f Filter) ([]model.Car, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const carColumns = `id, make, model, year, type, fuel_type, transmission, seats, price_per_day, location, rating, review_count, images, features, available, description`

func (r *repo) ByID(ctx context.Context, id string) (*model.Car, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE id = $1`, id)
	return scanCar(row)
}

func (r *repo) ByType(ctx context.Context, carType string) ([]model.Car, error) {
	return r.list(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE type = $1
		ORDER BY id`, carType)
}

func (r *repo) TopRated(ctx context.Context, minRating float64, limit int) ([]model.Car, error) {
	return r.list(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE rating >= $1
		ORDER BY id
		LIMIT $2`, minRating, limit)
}

func (r *repo) All(ctx context.Context) ([]model.Car, error) {
	return r.list(ctx, `
		SELECT `+carColumns+`
		FROM cars
		ORDER BY id`)
}

func (r *repo) Search(ctx context.Context, f Filter) ([]model.Car, error) {
	query, args, err := buildSearch(f)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, query, args...)
}

// buildSearch composes the filter query: every present constraint is ANDed,
// except the free-text search which ORs an ILIKE across make, model,
// location, type and fuel_type.
func buildSearch(f Filter) (string, []any, error) {
	b := psql.Select(carColumns).From("cars")

	if f.Type != "" {
		b = b.Where(sq.Eq{"type": f.Type})
	}
	if len(f.PriceRange) == 2 {
		b = b.Where(sq.GtOrEq{"price_per_day": f.PriceRange[0]})
		b = b.Where(sq.LtOrEq{"price_per_day": f.PriceRange[1]})
	}
	if f.Transmission != "" {
		b = b.Where(sq.Eq{"transmission": f.Transmission})
	}
	if f.FuelType != "" {
		b = b.Where(sq.Eq{"fuel_type": f.FuelType})
	}
	if f.Seats > 0 {
		b = b.Where(sq.GtOrEq{"seats": f.Seats})
	}
	if f.SearchQuery != "" {
		p := "%" + f.SearchQuery + "%"
		b = b.Where(sq.Or{
			sq.ILike{"make": p},
			sq.ILike{"model": p},
			sq.ILike{"location": p},
			sq.ILike{"type": p},
			sq.ILike{"fuel_type": p},
		})
	}

	return b.OrderBy("id").ToSql()
}

func (r *repo) list(ctx context.Context, query string, args ...any) ([]model.Car, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCar(row pgx.Row) (*model.Car, error) {
	c := &model.Car{}
	err := row.Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.Type, &c.FuelType, &c.Transmission,
		&c.Seats, &c.PricePerDay, &c.Location, &c.Rating, &c.ReviewCount,
		&c.Images, &c.Features, &c.Available, &c.Description,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
