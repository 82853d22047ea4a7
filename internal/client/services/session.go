package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nmchugh17/evidence-timeline/internal/client/models"
	"github.com/nmchugh17/evidence-timeline/internal/client/repositories/metadata"
	"github.com/nmchugh17/evidence-timeline/internal/dbx"
)

const (
	sessionUserKey     = "user"
	sessionLoggedInKey = "logged_in_at"
)

// SessionStore persists the signed-in user in the local metadata table.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save writes the user record and login time in one transaction.
func (s *SessionStore) Save(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionUserKey, b); err != nil {
			return err
		}
		return repo.Set(ctx, sessionLoggedInKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Load returns the persisted user or nil when there is none. A record that
// no longer decodes is discarded.
func (s *SessionStore) Load(ctx context.Context) (*models.User, error) {
	repo := metadata.NewSQLiteRepository(s.db)
	b, err := repo.Get(ctx, sessionUserKey)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(b, &u); err != nil || u.Email == "" {
		return nil, s.Clear(ctx)
	}
	return &u, nil
}

// Clear drops every persisted session record.
func (s *SessionStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Clear(ctx)
}
