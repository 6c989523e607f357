package monsters

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
	errMonsterNil = "monster cannot be nil"

	selectMonsters = "SELECT m.id, m.name, m.health, m.damage, m.created_at, m.updated_at FROM monsters m"
	selectDrops    = "SELECT " + sqlite.ItemColumns + ", md.monster_id, md.drop_chance FROM monster_drops md JOIN items i ON i.id = md.item_id"
)

type sqliteRepository struct {
	db    *sqlite.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite monster repository.
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

// NewSQLite creates a new SQLite-backed monster repository
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
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}

	m := input.Monster
	now := r.clock.Now()
	res, err := r.db.SQL().ExecContext(ctx,
		"INSERT INTO monsters (name, health, damage, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		m.Name, m.Health, m.Damage, sqlite.ToMillis(now), sqlite.ToMillis(now),
	)
	if err != nil {
		if sqlite.IsCheckViolation(err) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "monster violates catalog constraints")
		}
		return nil, errors.Wrap(err, "failed to create monster")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read monster id")
	}

	slog.DebugContext(ctx, "monster created", "monster_id", id)
	return &CreateOutput{Monster: &entities.Monster{
		ID:        id,
		Name:      m.Name,
		Health:    m.Health,
		Damage:    m.Damage,
		LootTable: []*entities.LootEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	m, err := scanMonster(r.db.SQL().QueryRowContext(ctx, selectMonsters+" WHERE m.id = ?", input.ID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("monster with ID %d not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %d", input.ID)
	}

	if err := r.attachDrops(ctx, []*entities.Monster{m},
		selectDrops+" WHERE md.monster_id = ? ORDER BY md.rowid", input.ID); err != nil {
		return nil, err
	}
	return &GetOutput{Monster: m}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	return r.list(ctx, "", nil)
}

func (r *sqliteRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	return r.list(ctx, " WHERE m.name = ?", []any{input.Name})
}

func (r *sqliteRepository) list(ctx context.Context, where string, args []any) (*ListOutput, error) {
	rows, err := r.db.SQL().QueryContext(ctx, selectMonsters+where+" ORDER BY m.id", args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	defer func() { _ = rows.Close() }()

	list := []*entities.Monster{}
	for rows.Next() {
		m, err := scanMonster(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan monster")
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate monsters")
	}
	if len(list) == 0 {
		return &ListOutput{Monsters: list}, nil
	}

	ids := make([]any, len(list))
	for i, m := range list {
		ids[i] = m.ID
	}
	query := selectDrops + " WHERE md.monster_id IN (" + sqlite.Placeholders(len(ids)) + ") ORDER BY md.rowid"
	if err := r.attachDrops(ctx, list, query, ids...); err != nil {
		return nil, err
	}
	return &ListOutput{Monsters: list}, nil
}

func (r *sqliteRepository) attachDrops(ctx context.Context, list []*entities.Monster, query string, args ...any) error {
	byID := make(map[int64]*entities.Monster, len(list))
	for _, m := range list {
		byID[m.ID] = m
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to load drops")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			monsterID int64
			chance    float64
		)
		item, err := sqlite.ScanItem(rows, &monsterID, &chance)
		if err != nil {
			return errors.Wrap(err, "failed to scan drop")
		}
		if m, ok := byID[monsterID]; ok {
			m.LootTable = append(m.LootTable, &entities.LootEntry{Item: item, DropChance: chance})
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "failed to iterate drops")
	}
	return nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	m := input.Monster

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE monsters SET name = ?, health = ?, damage = ?, updated_at = ? WHERE id = ?",
			m.Name, m.Health, m.Damage, sqlite.ToMillis(r.clock.Now()), m.ID,
		)
		if err != nil {
			if sqlite.IsCheckViolation(err) {
				return errors.WrapWithCode(err, errors.CodeInvalidArgument, "monster violates catalog constraints")
			}
			return errors.Wrapf(err, "failed to update monster %d", m.ID)
		}
		if affected, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		} else if affected == 0 {
			return errors.NotFoundf("monster with ID %d not found", m.ID)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM monster_drops WHERE monster_id = ?", m.ID); err != nil {
			return errors.Wrap(err, "failed to clear drops")
		}
		for _, entry := range m.LootTable {
			if entry == nil || entry.Item == nil {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO monster_drops (monster_id, item_id, drop_chance) VALUES (?, ?, ?)",
				m.ID, entry.Item.ID, entry.DropChance,
			); err != nil {
				return translateDropError(err, m.ID, entry.Item.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := r.Get(ctx, GetInput{ID: m.ID})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Monster: out.Monster}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM monster_drops WHERE monster_id = ?", input.ID); err != nil {
			return errors.Wrap(err, "failed to delete drops")
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM monsters WHERE id = ?", input.ID)
		if err != nil {
			return errors.Wrapf(err, "failed to delete monster %d", input.ID)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		}
		if affected == 0 {
			return errors.NotFoundf("monster with ID %d not found", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "monster deleted", "monster_id", input.ID)
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) AddDrop(ctx context.Context, input AddDropInput) (*AddDropOutput, error) {
	_, err := r.db.SQL().ExecContext(ctx,
		"INSERT INTO monster_drops (monster_id, item_id, drop_chance) VALUES (?, ?, ?)",
		input.MonsterID, input.ItemID, input.DropChance,
	)
	if err != nil {
		return nil, translateDropError(err, input.MonsterID, input.ItemID)
	}

	slog.DebugContext(ctx, "drop added",
		"monster_id", input.MonsterID, "item_id", input.ItemID, "drop_chance", input.DropChance)
	return &AddDropOutput{}, nil
}

func translateDropError(err error, monsterID, itemID int64) error {
	meta := map[string]interface{}{"monster_id": monsterID, "item_id": itemID}
	switch {
	case sqlite.IsPrimaryKeyViolation(err):
		return errors.WrapWithCode(err, errors.CodeAlreadyExists, "drop record already exists").WithMetaMap(meta)
	case sqlite.IsForeignKeyViolation(err):
		return errors.WrapWithCode(err, errors.CodeNotFound, "monster or item not found").WithMetaMap(meta)
	case sqlite.IsCheckViolation(err):
		return errors.WrapWithCode(err, errors.CodeOutOfRange, "drop chance out of range").WithMetaMap(meta)
	default:
		return errors.Wrap(err, "failed to store drop").WithMetaMap(meta)
	}
}

func scanMonster(row sqlite.Scanner) (*entities.Monster, error) {
	var (
		m         entities.Monster
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Health, &m.Damage, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	m.LootTable = []*entities.LootEntry{}
	m.CreatedAt = sqlite.FromMillis(createdAt)
	m.UpdatedAt = sqlite.FromMillis(updatedAt)
	return &m, nil
}
