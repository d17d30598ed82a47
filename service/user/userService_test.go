package usersvc

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/BriscanCatalin/RentalApp/model"
	userrepo "github.com/BriscanCatalin/RentalApp/repository/user"
)

type mockRepo struct {
	byIDFn   func(ctx context.Context, id string) (*model.User, error)
	updateFn func(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error)
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *model.User) error { return nil }
func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (m *mockRepo) ByID(ctx context.Context, id string) (*model.User, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) UpdateFields(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
	return m.updateFn(ctx, id, req)
}

func strptr(s string) *string { return &s }

func TestCurrent_NotFound(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	_, err := New(m).Current(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCurrent_Success(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Name: "Catalin"}, nil
		},
	}
	u, err := New(m).Current(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, "u-1", u.ID)
}

func TestUpdate_NormalizesEmail(t *testing.T) {
	var got model.UpdateUserReq
	m := &mockRepo{
		updateFn: func(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
			got = req
			return &model.User{ID: id}, nil
		},
	}
	_, err := New(m).Update(context.Background(), "u-1", model.UpdateUserReq{
		Email: strptr("  NEW@Example.COM "),
		Name:  strptr("New Name"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Email)
	require.Equal(t, "new@example.com", *got.Email)
	require.Equal(t, "New Name", *got.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockRepo{
		updateFn: func(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	_, err := New(m).Update(context.Background(), "missing", model.UpdateUserReq{Name: strptr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	m := &mockRepo{
		updateFn: func(ctx context.Context, id string, req model.UpdateUserReq) (*model.User, error) {
			return nil, &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			}
		},
	}
	_, err := New(m).Update(context.Background(), "u-1", model.UpdateUserReq{Email: strptr("taken@example.com")})
	require.ErrorIs(t, err, ErrEmailTaken)
}
