package catalog

import (
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

func validateCharacter(name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	return vb.Build()
}

func validateItem(name string, category entities.Category, agility, strength, stamina int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateEnum("category", string(category), entities.CategoryNames(), vb)
	errors.ValidateNonNegative("agility", agility, vb)
	errors.ValidateNonNegative("strength", strength, vb)
	errors.ValidateNonNegative("stamina", stamina, vb)
	return vb.Build()
}

func validateMonster(name string, health, damage int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateNonNegative("health", health, vb)
	errors.ValidateNonNegative("damage", damage, vb)
	return vb.Build()
}
