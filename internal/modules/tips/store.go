// README: Tips store backed by PostgreSQL.
package tips

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListTips returns the tips table in display order.
func (s *Store) ListTips(ctx context.Context) ([]Tip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT title, body
		FROM tips
		ORDER BY position, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tip
	for rows.Next() {
		var t Tip
		if err := rows.Scan(&t.Title, &t.Body); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
