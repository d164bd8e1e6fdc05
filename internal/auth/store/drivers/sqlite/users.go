package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/credhaus/credhaus/internal/auth/domain"
)

// usersRepo persists one row per user: the normalized email as the key and
// the JSON-serialized record as an opaque document. The email inside the
// document always matches the key column.
type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM users WHERE email = ?`, email,
	).Scan(&data)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	var u domain.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return domain.User{}, fmt.Errorf("sqlite: corrupt user record for %q: %w", email, err)
	}
	return u, nil
}

func (r *usersRepo) PutUser(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("sqlite: encode user record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (email, data) VALUES (?, ?)
		 ON CONFLICT(email) DO UPDATE SET data = excluded.data`,
		u.Email, string(data),
	)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE email = ?`, email)
	return err
}
