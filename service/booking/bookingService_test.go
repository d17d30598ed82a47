package bookingsvc

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/BriscanCatalin/RentalApp/model"
	bookingrepo "github.com/BriscanCatalin/RentalApp/repository/booking"
)

type mockRepo struct {
	createFn         func(ctx context.Context, b *model.Booking) error
	byIDFn           func(ctx context.Context, id string) (*model.Booking, error)
	byUserFn         func(ctx context.Context, userID string) ([]model.Booking, error)
	byUserStatusesFn func(ctx context.Context, userID string, statuses []string) ([]model.Booking, error)
}

var _ bookingrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, b *model.Booking) error { return m.createFn(ctx, b) }
func (m *mockRepo) ByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) ByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return m.byUserFn(ctx, userID)
}
func (m *mockRepo) ByUserAndStatuses(ctx context.Context, userID string, statuses []string) ([]model.Booking, error) {
	return m.byUserStatusesFn(ctx, userID, statuses)
}

func validParams() CreateParams {
	return CreateParams{
		ID:         "b1",
		CarID:      "c1",
		UserID:     "u1",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-05",
		TotalPrice: 200.0,
		Status:     "confirmed",
	}
}

func TestCreate_Success(t *testing.T) {
	var inserted *model.Booking
	m := &mockRepo{
		createFn: func(ctx context.Context, b *model.Booking) error {
			inserted = b
			return nil
		},
	}
	b, err := New(m).Create(context.Background(), validParams())
	require.NoError(t, err)
	require.Same(t, b, inserted)
	require.Equal(t, "b1", b.ID)
	require.Equal(t, "2024-01-01", b.StartDate.Format("2006-01-02"))
	require.Equal(t, "2024-01-05", b.EndDate.Format("2006-01-02"))
}

func TestCreate_BadDate(t *testing.T) {
	svc := New(&mockRepo{})

	p := validParams()
	p.StartDate = "01/01/2024"
	_, err := svc.Create(context.Background(), p)
	require.ErrorIs(t, err, ErrBadDate)

	p = validParams()
	p.EndDate = "2024-13-40"
	_, err = svc.Create(context.Background(), p)
	require.ErrorIs(t, err, ErrBadDate)
}

func TestCreate_DuplicateID(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "bookings_pkey"}
		},
	}
	_, err := New(m).Create(context.Background(), validParams())
	require.ErrorIs(t, err, ErrIDTaken)
}

func TestCreate_MissingCar(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bookings_car_id_fkey"}
		},
	}
	_, err := New(m).Create(context.Background(), validParams())
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreate_MissingUser(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bookings_user_id_fkey"}
		},
	}
	_, err := New(m).Create(context.Background(), validParams())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDetail_NotFound(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, pgx.ErrNoRows
		},
	}
	_, err := New(m).Detail(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestActive_StatusSet(t *testing.T) {
	m := &mockRepo{
		byUserStatusesFn: func(ctx context.Context, userID string, statuses []string) ([]model.Booking, error) {
			require.Equal(t, "u1", userID)
			require.ElementsMatch(t, []string{"confirmed", "active"}, statuses)
			return []model.Booking{{ID: "b1"}}, nil
		},
	}
	rows, err := New(m).Active(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestPast_StatusSet(t *testing.T) {
	m := &mockRepo{
		byUserStatusesFn: func(ctx context.Context, userID string, statuses []string) ([]model.Booking, error) {
			require.Equal(t, []string{"completed"}, statuses)
			return nil, nil
		},
	}
	_, err := New(m).Past(context.Background(), "u1")
	require.NoError(t, err)
}
