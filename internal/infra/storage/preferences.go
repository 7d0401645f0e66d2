package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"
)

var ErrNotReady = errors.New("preference store not ready")

// PathForUser es la clave con la que se identifica el registro de un usuario.
func PathForUser(userID string) string { return "user." + userID }

// PreferenceStore guarda atributos sueltos por usuario, con el valor en JSON.
// Implementa bot.PreferenceStore.
type PreferenceStore struct {
	db  *sqlx.DB
	log *slog.Logger
	now func() time.Time

	once     sync.Once
	readyErr error
}

func NewPreferenceStore(db *sqlx.DB, log *slog.Logger) *PreferenceStore {
	return &PreferenceStore{db: db, log: log, now: time.Now}
}

// Ready corre las migraciones una sola vez. Las llamadas siguientes devuelven
// el mismo resultado.
func (s *PreferenceStore) Ready(ctx context.Context) error {
	s.once.Do(func() {
		if err := Migrate(context.WithoutCancel(ctx), s.db); err != nil {
			s.readyErr = fmt.Errorf("%w: %v", ErrNotReady, err)
			return
		}
		s.log.Debug("preference store ready", "driver", s.db.DriverName())
	})
	return s.readyErr
}

func (s *PreferenceStore) GetUserData(ctx context.Context, userID, key string) (mo.Option[any], error) {
	if err := s.Ready(ctx); err != nil {
		return mo.None[any](), err
	}

	var raw string
	q := s.db.Rebind(`SELECT value FROM user_data WHERE user_id = ? AND attribute = ?`)
	err := s.db.GetContext(ctx, &raw, q, userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return mo.None[any](), nil
	}
	if err != nil {
		return mo.None[any](), fmt.Errorf("get %s.%s: %w", PathForUser(userID), key, err)
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return mo.None[any](), fmt.Errorf("decode %s.%s: %w", PathForUser(userID), key, err)
	}
	return mo.Some(v), nil
}

// SetUserData hace upsert de cada clave en una transacción; las demás claves
// del usuario no se tocan.
func (s *PreferenceStore) SetUserData(ctx context.Context, userID string, data map[string]any) error {
	if err := s.Ready(ctx); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := tx.Rebind(`
INSERT INTO user_data (user_id, attribute, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, attribute) DO UPDATE SET
  value      = excluded.value,
  updated_at = excluded.updated_at`)
	now := s.now().UTC()
	for _, k := range keys {
		raw, err := json.Marshal(data[k])
		if err != nil {
			return fmt.Errorf("encode %s.%s: %w", PathForUser(userID), k, err)
		}
		if _, err := tx.ExecContext(ctx, q, userID, k, string(raw), now); err != nil {
			return fmt.Errorf("set %s.%s: %w", PathForUser(userID), k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.log.Debug("user data saved", "path", PathForUser(userID), "keys", keys)
	return nil
}
