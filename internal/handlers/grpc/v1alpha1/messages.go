package v1alpha1

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

// request reads typed fields out of a Struct message. Missing fields read as
// zero values.
type request struct {
	fields map[string]*structpb.Value
}

func newRequest(in *structpb.Struct) request {
	return request{fields: in.GetFields()}
}

func (r request) str(name string) string {
	return r.fields[name].GetStringValue()
}

func (r request) float(name string) (float64, error) {
	v, ok := r.fields[name]
	if !ok {
		return 0, nil
	}
	if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber {
		return 0, errors.InvalidArgumentf("%s must be a number", name).WithMeta("field", name)
	}
	return v.GetNumberValue(), nil
}

// wholeNumber converts f when it is an integer a float64 represents exactly
func wholeNumber(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

func (r request) integer(name string) (int64, error) {
	f, err := r.float(name)
	if err != nil {
		return 0, err
	}
	n, ok := wholeNumber(f)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be an integer", name).WithMeta("field", name)
	}
	return n, nil
}

func (r request) id(name string) (int64, error) {
	id, err := r.integer(name)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.InvalidArgumentf("%s is required", name).WithMeta("field", name)
	}
	return id, nil
}

func (r request) ids(name string) ([]int64, error) {
	v, ok := r.fields[name]
	if !ok {
		return nil, nil
	}
	list := v.GetListValue()
	if list == nil {
		return nil, errors.InvalidArgumentf("%s must be a list of ids", name).WithMeta("field", name)
	}

	out := make([]int64, 0, len(list.GetValues()))
	for _, elem := range list.GetValues() {
		if _, isNumber := elem.GetKind().(*structpb.Value_NumberValue); !isNumber {
			return nil, errors.InvalidArgumentf("%s must be a list of ids", name).WithMeta("field", name)
		}
		id, ok := wholeNumber(elem.GetNumberValue())
		if !ok || id <= 0 {
			return nil, errors.InvalidArgumentf("%s must be a list of ids", name).WithMeta("field", name)
		}
		out = append(out, id)
	}
	return out, nil
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func itemFields(item *entities.Item) map[string]any {
	return map[string]any{
		"id":         float64(item.ID),
		"name":       item.Name,
		"category":   item.Category.String(),
		"agility":    float64(item.Agility),
		"strength":   float64(item.Strength),
		"stamina":    float64(item.Stamina),
		"created_at": timestamp(item.CreatedAt),
		"updated_at": timestamp(item.UpdatedAt),
	}
}

func itemList(list []*entities.Item) []any {
	out := make([]any, 0, len(list))
	for _, item := range list {
		if item != nil {
			out = append(out, itemFields(item))
		}
	}
	return out
}

func characterFields(char *entities.Character) map[string]any {
	return map[string]any{
		"id":         float64(char.ID),
		"name":       char.Name,
		"equipped":   itemList(char.Equipped),
		"created_at": timestamp(char.CreatedAt),
		"updated_at": timestamp(char.UpdatedAt),
	}
}

func monsterFields(m *entities.Monster) map[string]any {
	table := make([]any, 0, len(m.LootTable))
	for _, entry := range m.LootTable {
		if entry == nil || entry.Item == nil {
			continue
		}
		table = append(table, map[string]any{
			"item":        itemFields(entry.Item),
			"drop_chance": entry.DropChance,
		})
	}
	return map[string]any{
		"id":         float64(m.ID),
		"name":       m.Name,
		"health":     float64(m.Health),
		"damage":     float64(m.Damage),
		"loot_table": table,
		"created_at": timestamp(m.CreatedAt),
		"updated_at": timestamp(m.UpdatedAt),
	}
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return s, nil
}

func characterResponse(char *entities.Character) (*structpb.Struct, error) {
	return toStruct(map[string]any{"character": characterFields(char)})
}

func charactersResponse(list []*entities.Character) (*structpb.Struct, error) {
	out := make([]any, 0, len(list))
	for _, char := range list {
		if char != nil {
			out = append(out, characterFields(char))
		}
	}
	return toStruct(map[string]any{"characters": out})
}

func itemResponse(item *entities.Item) (*structpb.Struct, error) {
	return toStruct(map[string]any{"item": itemFields(item)})
}

func itemsResponse(list []*entities.Item) (*structpb.Struct, error) {
	return toStruct(map[string]any{"items": itemList(list)})
}

func monsterResponse(m *entities.Monster) (*structpb.Struct, error) {
	return toStruct(map[string]any{"monster": monsterFields(m)})
}

func monstersResponse(list []*entities.Monster) (*structpb.Struct, error) {
	out := make([]any, 0, len(list))
	for _, m := range list {
		if m != nil {
			out = append(out, monsterFields(m))
		}
	}
	return toStruct(map[string]any{"monsters": out})
}

func deletedResponse(deleted bool) (*structpb.Struct, error) {
	return toStruct(map[string]any{"deleted": deleted})
}
