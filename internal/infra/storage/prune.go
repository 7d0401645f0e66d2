package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultRetention es cuánto sobrevive un atributo que quedó en su valor por defecto.
const DefaultRetention = 180 * 24 * time.Hour

// PruneDefaults borra los atributos en false que nadie tocó desde hace retention.
func PruneDefaults(ctx context.Context, pool *pgxpool.Pool, retention time.Duration) (int64, error) {
	tag, err := pool.Exec(ctx, `
DELETE FROM user_data
WHERE value = 'false'
  AND updated_at < $1`, time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("prune user_data: %w", err)
	}
	return tag.RowsAffected(), nil
}
