package userrepo

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/BriscanCatalin/RentalApp/model"
	"github.com/BriscanCatalin/RentalApp/util/database"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id string) (*model.User, error)
	UpdateFields(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, email, password_hash, phone, avatar, driving_license, address, city, country, zip_code, created_at`

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO users(id, name, email, password_hash)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		u.ID, u.Name, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Avatar,
		&u.DrivingLicense, &u.Address, &u.City, &u.Country, &u.ZipCode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE id = $1`,
		id,
	).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Avatar,
		&u.DrivingLicense, &u.Address, &u.City, &u.Country, &u.ZipCode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateFields applies only the whitelisted profile columns that are present
// in req. password_hash and id are never touched through this path.
func (r *repo) UpdateFields(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
	b := psql.Update("users")
	set := false

	apply := func(col string, v *string) {
		if v != nil {
			b = b.Set(col, *v)
			set = true
		}
	}
	apply("name", req.Name)
	apply("email", req.Email)
	apply("phone", req.Phone)
	apply("avatar", req.Avatar)
	apply("driving_license", req.DrivingLicense)
	apply("address", req.Address)
	apply("city", req.City)
	apply("country", req.Country)
	apply("zip_code", req.ZipCode)

	if !set {
		return r.ByID(ctx, id)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	u := &model.User{}
	err = r.db.Pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Avatar,
		&u.DrivingLicense, &u.Address, &u.City, &u.Country, &u.ZipCode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}
