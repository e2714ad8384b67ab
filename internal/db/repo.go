package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Get returns the value stored under key; ok is false when the key was never written.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	entry := &StorageEntry{}
	err := r.db.ModelContext(ctx, entry).
		Where(`"t"."key" = ?`, key).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to get storage entry: %w", err)
	}

	return entry.Value, true, nil
}

// Set inserts or replaces the value stored under key.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	entry := &StorageEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	_, err := r.db.ModelContext(ctx, entry).
		OnConflict(`("key") DO UPDATE`).
		Set(`"value" = EXCLUDED."value"`).
		Set(`"updatedAt" = EXCLUDED."updatedAt"`).
		Insert()

	if err != nil {
		return fmt.Errorf("failed to set storage entry: %w", err)
	}

	return nil
}
