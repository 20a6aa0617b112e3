package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PresetStore = (*PresetRepo)(nil)

// PresetRepo is the SQLite implementation of the PresetStore port interface.
type PresetRepo struct {
	db *DB
}

// NewPresetRepo creates a new PresetRepo backed by the given DB.
func NewPresetRepo(db *DB) *PresetRepo {
	return &PresetRepo{db: db}
}

// Add inserts a new preset and returns it with its assigned ID. Returns
// driven.ErrPresetAlreadyExists if the name is already used.
func (r *PresetRepo) Add(ctx context.Context, preset model.CardPreset) (model.CardPreset, error) {
	const query = `
		INSERT INTO card_presets (name, title, subtitle, footer, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	updatedAt := preset.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	preset.UpdatedAt = updatedAt.UTC().Truncate(time.Second)

	result, err := r.db.Writer.ExecContext(ctx, query,
		preset.Name, preset.Text.Title, preset.Text.Subtitle, preset.Text.Footer,
		preset.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.CardPreset{}, driven.ErrPresetAlreadyExists
		}
		return model.CardPreset{}, fmt.Errorf("add preset %q: %w", preset.Name, err)
	}

	preset.ID, err = result.LastInsertId()
	if err != nil {
		return model.CardPreset{}, fmt.Errorf("last insert id: %w", err)
	}

	return preset, nil
}

// Remove deletes a preset by name. Returns driven.ErrPresetNotFound if no
// preset has that name.
func (r *PresetRepo) Remove(ctx context.Context, name string) error {
	const query = `DELETE FROM card_presets WHERE name = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("remove preset %q: %w", name, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return driven.ErrPresetNotFound
	}

	return nil
}

// GetByName retrieves a preset by name. Returns (nil, nil) if not found.
func (r *PresetRepo) GetByName(ctx context.Context, name string) (*model.CardPreset, error) {
	const query = `
		SELECT id, name, title, subtitle, footer, updated_at
		FROM card_presets
		WHERE name = ?
	`

	preset, err := scanPreset(r.db.Reader.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %q: %w", name, err)
	}

	return &preset, nil
}

// ListAll returns all presets ordered by name.
func (r *PresetRepo) ListAll(ctx context.Context) ([]model.CardPreset, error) {
	const query = `
		SELECT id, name, title, subtitle, footer, updated_at
		FROM card_presets
		ORDER BY name
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []model.CardPreset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		presets = append(presets, preset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}

	return presets, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (model.CardPreset, error) {
	var p model.CardPreset
	var updatedAt string

	if err := row.Scan(&p.ID, &p.Name, &p.Text.Title, &p.Text.Subtitle, &p.Text.Footer, &updatedAt); err != nil {
		return model.CardPreset{}, err
	}

	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return model.CardPreset{}, fmt.Errorf("parse updated_at: %w", err)
	}
	p.UpdatedAt = t

	return p, nil
}
