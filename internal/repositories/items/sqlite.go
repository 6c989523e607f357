package items

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
	errItemNil = "item cannot be nil"

	selectItems = "SELECT " + sqlite.ItemColumns + " FROM items i"
)

type sqliteRepository struct {
	db    *sqlite.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite item repository.
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

// NewSQLite creates a new SQLite-backed item repository
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
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	item := *input.Item
	now := r.clock.Now()
	item.CreatedAt, item.UpdatedAt = now, now

	res, err := r.db.SQL().ExecContext(ctx,
		`INSERT INTO items (name, category, agility, strength, stamina, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Name, string(item.Category), item.Agility, item.Strength, item.Stamina,
		sqlite.ToMillis(now), sqlite.ToMillis(now),
	)
	if err != nil {
		if sqlite.IsCheckViolation(err) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item violates catalog constraints")
		}
		return nil, errors.Wrap(err, "failed to create item")
	}

	item.ID, err = res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read item id")
	}

	slog.DebugContext(ctx, "item created", "item_id", item.ID, "category", item.Category)
	return &CreateOutput{Item: &item}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	row := r.db.SQL().QueryRowContext(ctx, selectItems+" WHERE i.id = ?", input.ID)
	item, err := sqlite.ScanItem(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("item with ID %d not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", input.ID)
	}
	return &GetOutput{Item: item}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	return r.query(ctx, selectItems+" ORDER BY i.id")
}

func (r *sqliteRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	return r.query(ctx, selectItems+" WHERE i.name = ? ORDER BY i.id", input.Name)
}

func (r *sqliteRepository) ListByCategory(ctx context.Context, input ListByCategoryInput) (*ListOutput, error) {
	return r.query(ctx, selectItems+" WHERE i.category = ? ORDER BY i.id", string(input.Category))
}

func (r *sqliteRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListOutput, error) {
	return r.query(ctx,
		selectItems+" JOIN character_equipment ce ON ce.item_id = i.id WHERE ce.character_id = ? ORDER BY ce.rowid",
		input.CharacterID,
	)
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) (*ListOutput, error) {
	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{Items: []*entities.Item{}}
	for rows.Next() {
		item, err := sqlite.ScanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan item")
		}
		out.Items = append(out.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate items")
	}
	return out, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Item.ID})
	if err != nil {
		return nil, err
	}

	item := *input.Item
	item.CreatedAt = existing.Item.CreatedAt
	item.UpdatedAt = r.clock.Now()

	_, err = r.db.SQL().ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, agility = ?, strength = ?, stamina = ?, updated_at = ?
		 WHERE id = ?`,
		item.Name, string(item.Category), item.Agility, item.Strength, item.Stamina,
		sqlite.ToMillis(item.UpdatedAt), item.ID,
	)
	if err != nil {
		if sqlite.IsCheckViolation(err) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item violates catalog constraints")
		}
		return nil, errors.Wrapf(err, "failed to update item %d", item.ID)
	}

	return &UpdateOutput{Item: &item}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	res, err := r.db.SQL().ExecContext(ctx, "DELETE FROM items WHERE id = ?", input.ID)
	if err != nil {
		if sqlite.IsForeignKeyViolation(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition,
				"item %d is still equipped or dropped", input.ID).WithMeta("item_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to delete item %d", input.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("item with ID %d not found", input.ID)
	}

	slog.DebugContext(ctx, "item deleted", "item_id", input.ID)
	return &DeleteOutput{}, nil
}
