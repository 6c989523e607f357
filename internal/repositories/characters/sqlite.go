package characters

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/storage/sqlite"
)

const (
	errCharacterNil = "character cannot be nil"

	selectCharacters = "SELECT c.id, c.name, c.created_at, c.updated_at FROM characters c"
	selectEquipment  = "SELECT " + sqlite.ItemColumns + ", ce.character_id FROM character_equipment ce JOIN items i ON i.id = ce.item_id"
)

type sqliteRepository struct {
	db    *sqlite.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
type SQLiteConfig struct {
	DB    *sqlite.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed character repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	now := r.clock.Now()
	res, err := r.db.SQL().ExecContext(ctx,
		"INSERT INTO characters (name, created_at, updated_at) VALUES (?, ?, ?)",
		input.Character.Name, sqlite.ToMillis(now), sqlite.ToMillis(now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character id")
	}

	slog.DebugContext(ctx, "character created", "character_id", id)
	return &CreateOutput{Character: &entities.Character{
		ID:        id,
		Name:      input.Character.Name,
		Equipped:  []*entities.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	char, err := scanCharacter(r.db.SQL().QueryRowContext(ctx, selectCharacters+" WHERE c.id = ?", input.ID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.ID)
	}

	if err := r.attachEquipment(ctx, []*entities.Character{char},
		selectEquipment+" WHERE ce.character_id = ? ORDER BY ce.rowid", input.ID); err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	return r.list(ctx, "", nil)
}

func (r *sqliteRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	return r.list(ctx, " WHERE c.name = ?", []any{input.Name})
}

func (r *sqliteRepository) list(ctx context.Context, where string, args []any) (*ListOutput, error) {
	rows, err := r.db.SQL().QueryContext(ctx, selectCharacters+where+" ORDER BY c.id", args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	chars := []*entities.Character{}
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		chars = append(chars, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate characters")
	}
	if len(chars) == 0 {
		return &ListOutput{Characters: chars}, nil
	}

	ids := make([]any, len(chars))
	for i, c := range chars {
		ids[i] = c.ID
	}
	query := selectEquipment + " WHERE ce.character_id IN (" + sqlite.Placeholders(len(ids)) + ") ORDER BY ce.rowid"
	if err := r.attachEquipment(ctx, chars, query, ids...); err != nil {
		return nil, err
	}
	return &ListOutput{Characters: chars}, nil
}

func (r *sqliteRepository) attachEquipment(ctx context.Context, chars []*entities.Character, query string, args ...any) error {
	byID := make(map[int64]*entities.Character, len(chars))
	for _, c := range chars {
		byID[c.ID] = c
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to load equipment")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var charID int64
		item, err := sqlite.ScanItem(rows, &charID)
		if err != nil {
			return errors.Wrap(err, "failed to scan equipment")
		}
		if c, ok := byID[charID]; ok {
			c.Equipped = append(c.Equipped, item)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "failed to iterate equipment")
	}
	return nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	char := input.Character

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE characters SET name = ?, updated_at = ? WHERE id = ?",
			char.Name, sqlite.ToMillis(r.clock.Now()), char.ID,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to update character %d", char.ID)
		}
		if affected, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		} else if affected == 0 {
			return errors.NotFoundf("character with ID %d not found", char.ID)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM character_equipment WHERE character_id = ?", char.ID); err != nil {
			return errors.Wrap(err, "failed to clear equipment")
		}
		for _, itemID := range char.EquippedIDs() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO character_equipment (character_id, item_id) VALUES (?, ?)", char.ID, itemID,
			); err != nil {
				return translateEquipmentError(err, char.ID, itemID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := r.Get(ctx, GetInput{ID: char.ID})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Character: out.Character}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM character_equipment WHERE character_id = ?", input.ID); err != nil {
			return errors.Wrap(err, "failed to delete equipment")
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM characters WHERE id = ?", input.ID)
		if err != nil {
			return errors.Wrapf(err, "failed to delete character %d", input.ID)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		}
		if affected == 0 {
			return errors.NotFoundf("character with ID %d not found", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "character deleted", "character_id", input.ID)
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) AddEquipment(ctx context.Context, input AddEquipmentInput) (*AddEquipmentOutput, error) {
	_, err := r.db.SQL().ExecContext(ctx,
		"INSERT INTO character_equipment (character_id, item_id) VALUES (?, ?)",
		input.CharacterID, input.ItemID,
	)
	if err != nil {
		return nil, translateEquipmentError(err, input.CharacterID, input.ItemID)
	}

	slog.DebugContext(ctx, "equipment added", "character_id", input.CharacterID, "item_id", input.ItemID)
	return &AddEquipmentOutput{}, nil
}

func translateEquipmentError(err error, characterID, itemID int64) error {
	meta := map[string]interface{}{"character_id": characterID, "item_id": itemID}
	switch {
	case sqlite.IsPrimaryKeyViolation(err):
		return errors.WrapWithCode(err, errors.CodeAlreadyExists, "equipment record already exists").WithMetaMap(meta)
	case sqlite.IsForeignKeyViolation(err):
		return errors.WrapWithCode(err, errors.CodeNotFound, "character or item not found").WithMetaMap(meta)
	default:
		return errors.Wrap(err, "failed to store equipment").WithMetaMap(meta)
	}
}

func scanCharacter(row sqlite.Scanner) (*entities.Character, error) {
	var (
		char      entities.Character
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&char.ID, &char.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	char.Equipped = []*entities.Item{}
	char.CreatedAt = sqlite.FromMillis(createdAt)
	char.UpdatedAt = sqlite.FromMillis(updatedAt)
	return &char, nil
}
