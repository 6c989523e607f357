package errors_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildListsFieldsInOrder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").Fieldf("health", "must be at least %d", 0)
	s.True(vb.HasErrors())

	err := vb.Build()
	s.Require().Error(err)
	s.Equal("validation failed: health: must be at least 0; name: is required", errors.GetMessage(err))
	s.Equal(map[string][]string{
		"health": {"must be at least 0"},
		"name":   {"is required"},
	}, errors.GetMeta(err)["fields"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("strength", "must be between %d and %d", 0, 100).
		RequiredField("category").
		InvalidField("category", "unknown")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "category: is required, is invalid: unknown")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Arin", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"zero", 0, false},
		{"positive", 12, false},
		{"negative", -1, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateNonNegative("damage", tc.value, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateFloatRange() {
	testCases := []struct {
		name      string
		value     float64
		shouldErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 1, false},
		{"inside", 0.35, false},
		{"below", -0.01, true},
		{"above", 1.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateFloatRange("drop_chance", tc.value, 0, 1, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"weapon", "armor", "accessory"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", "armor", allowed, vb)
	s.NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("category", "shield", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: weapon, armor, accessory")
}
