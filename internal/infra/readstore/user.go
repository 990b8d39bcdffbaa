package readstore

import (
	"context"
	"errors"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/user"
	"github.com/IneMentenPXL/FlightsApp/internal/infra"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const (
	findCustomerByHandleQuery = `SELECT uid, handle, password, name FROM customer WHERE handle = $1`
	findCustomerByIDQuery     = `SELECT uid, handle, name FROM customer WHERE uid = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByHandle returns the customer record plus the stored password hash for
// credential comparison.
func (r *UserReadStore) FindByHandle(ctx context.Context, handle string) (*user.User, string, error) {
	var (
		u            user.User
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findCustomerByHandleQuery, handle).
		Scan(&u.ID, &u.Handle, &passwordHash, &u.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by handle", err)
	}
	return &u, passwordHash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, findCustomerByIDQuery, id).
		Scan(&u.ID, &u.Handle, &u.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return &u, nil
}
