package bookingrepo

import (
	"context"

	"github.com/BriscanCatalin/RentalApp/model"
	"github.com/BriscanCatalin/RentalApp/util/database"
)

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id string) (*model.Booking, error)
	ByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ByUserAndStatuses(ctx context.Context, userID string, statuses []string) ([]model.Booking, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const bookingColumns = `id, car_id, user_id, start_date, end_date, total_price, status, created_at`

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings(id, car_id, user_id, start_date, end_date, total_price, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		b.ID, b.CarID, b.UserID, b.StartDate.Time, b.EndDate.Time, b.TotalPrice, b.Status,
	).Scan(&b.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Booking, error) {
	b := &model.Booking{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1`, id,
	).Scan(&b.ID, &b.CarID, &b.UserID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) ByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return r.list(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
}

func (r *repo) ByUserAndStatuses(ctx context.Context, userID string, statuses []string) ([]model.Booking, error) {
	return r.list(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		AND status = ANY($2)
		ORDER BY created_at DESC, id`, userID, statuses)
}

func (r *repo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.CarID, &b.UserID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
