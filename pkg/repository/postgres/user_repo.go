package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/members/pkg/user"
)

const uniqueViolation = "23505"

// UserRepository implements user.Store backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ user.Store = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Begin starts a transaction scoped to the users table.
func (r *UserRepository) Begin(ctx context.Context) (user.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &userTx{tx: tx}, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

type userTx struct {
	tx pgx.Tx
}

func (t *userTx) Insert(ctx context.Context, u user.User) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, password, date_of_birth, gender,
			address, phone_number, insurance, dni, product, membership,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.DateOfBirth, u.Gender,
		u.Address, u.PhoneNumber, u.Insurance, u.DNI, u.Product, u.Membership,
		u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.Join(user.ErrEmailTaken, err)
		}
		return err
	}
	return nil
}

func (t *userTx) Commit(ctx context.Context) error { return t.tx.Commit(ctx) }

func (t *userTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
