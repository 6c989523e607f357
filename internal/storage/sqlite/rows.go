package sqlite

import (
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// ItemColumns selects an item row from a table aliased "i"
const ItemColumns = "i.id, i.name, i.category, i.agility, i.strength, i.stamina, i.created_at, i.updated_at"

// Scanner is satisfied by *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// ScanItem reads one row selected with ItemColumns, followed by extra
// destinations for any trailing columns.
func ScanItem(row Scanner, extra ...any) (*entities.Item, error) {
	var (
		item      entities.Item
		category  string
		createdAt int64
		updatedAt int64
	)
	dest := []any{&item.ID, &item.Name, &category, &item.Agility, &item.Strength, &item.Stamina, &createdAt, &updatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	item.Category = entities.Category(category)
	item.CreatedAt = FromMillis(createdAt)
	item.UpdatedAt = FromMillis(updatedAt)
	return &item, nil
}
