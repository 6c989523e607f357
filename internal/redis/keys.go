package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// Catalog keyspace. Records are JSON strings, "all" indexes are sorted sets
// scored by id, name and category indexes are plain sets, and relationship
// sets are sorted sets scored by a global sequence so reads keep write order.
const (
	itemKeyPrefix      = "item:"
	characterKeyPrefix = "character:"
	monsterKeyPrefix   = "monster:"

	ItemsAllKey      = "items:all"
	CharactersAllKey = "characters:all"
	MonstersAllKey   = "monsters:all"

	ItemSequenceKey      = "items:seq"
	CharacterSequenceKey = "characters:seq"
	MonsterSequenceKey   = "monsters:seq"
	RelationSequenceKey  = "relations:seq"
)

// ItemKey returns the record key of an item
func ItemKey(id int64) string { return itemKeyPrefix + strconv.FormatInt(id, 10) }

// ItemNameKey returns the name index of items
func ItemNameKey(name string) string { return "items:name:" + name }

// ItemCategoryKey returns the category index of items
func ItemCategoryKey(category entities.Category) string { return "items:category:" + string(category) }

// ItemEquippedByKey returns the set of characters equipping the item
func ItemEquippedByKey(id int64) string { return ItemKey(id) + ":equipped_by" }

// ItemDroppedByKey returns the set of monsters dropping the item
func ItemDroppedByKey(id int64) string { return ItemKey(id) + ":dropped_by" }

// CharacterKey returns the record key of a character
func CharacterKey(id int64) string { return characterKeyPrefix + strconv.FormatInt(id, 10) }

// CharacterNameKey returns the name index of characters
func CharacterNameKey(name string) string { return "characters:name:" + name }

// CharacterEquipmentKey returns the ordered equipped item ids of a character
func CharacterEquipmentKey(id int64) string { return CharacterKey(id) + ":equipment" }

// MonsterKey returns the record key of a monster
func MonsterKey(id int64) string { return monsterKeyPrefix + strconv.FormatInt(id, 10) }

// MonsterNameKey returns the name index of monsters
func MonsterNameKey(name string) string { return "monsters:name:" + name }

// MonsterDropsKey returns the hash of item id to drop chance
func MonsterDropsKey(id int64) string { return MonsterKey(id) + ":drops" }

// MonsterDropOrderKey returns the ordered dropped item ids of a monster
func MonsterDropOrderKey(id int64) string { return MonsterKey(id) + ":drop_order" }

// FormatID renders an id as a set member
func FormatID(id int64) string { return strconv.FormatInt(id, 10) }

// ParseIDs converts set members back to ids
func ParseIDs(members []string) ([]int64, error) {
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadItems fetches item records in the order of ids. Ids without a record
// are skipped.
func LoadItems(ctx context.Context, client Client, ids []int64) ([]*entities.Item, error) {
	items := make([]*entities.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ItemKey(id)
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var item entities.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("unmarshal item: %w", err)
		}
		items = append(items, &item)
	}
	return items, nil
}

// OrderedIDs reads a sorted set of ids in score order
func OrderedIDs(ctx context.Context, client Client, key string) ([]int64, error) {
	members, err := client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return ParseIDs(members)
}

// SetIDs reads an unordered set of ids and returns them ascending
func SetIDs(ctx context.Context, client Client, key string) ([]int64, error) {
	members, err := client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	ids, err := ParseIDs(members)
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	return ids, nil
}

// IsNil reports a missing key
func IsNil(err error) bool {
	return err == redis.Nil
}
