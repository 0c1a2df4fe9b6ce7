package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkfel/schedule1-reverse-search/search"
)

func TestApply_AddsBaseEffect(t *testing.T) {
	ing := search.Ingredient{Name: "Cuke", BaseEffect: "Energizing"}

	result := search.Apply(search.NewEffectSet(), ing, search.SkipSelfTarget)

	assert.Equal(t, []string{"Energizing"}, result.Sorted())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	ing := search.Ingredient{
		Name:         "Motor Oil",
		BaseEffect:   "Slippery",
		Replacements: []search.Replacement{{Old: "Energizing", New: "Munchies"}},
	}
	effects := search.NewEffectSet("Energizing")

	result := search.Apply(effects, ing, search.SkipSelfTarget)

	assert.Equal(t, []string{"Energizing"}, effects.Sorted())
	assert.Equal(t, []string{"Munchies", "Slippery"}, result.Sorted())
}

func TestApply_SkipsSelfTargetingRuleWhenBaseJustAdded(t *testing.T) {
	// Donut's first rule targets its own base effect; on a fresh mix the
	// base effect it just introduced must survive.
	donut := search.Ingredient{
		Name:         "Donut",
		BaseEffect:   "Calorie-Dense",
		Replacements: []search.Replacement{{Old: "Calorie-Dense", New: "Explosive"}},
	}

	result := search.Apply(search.NewEffectSet(), donut, search.SkipSelfTarget)

	assert.Equal(t, []string{"Calorie-Dense"}, result.Sorted())
}

func TestApply_SelfTargetingRuleFiresWhenBaseAlreadyPresent(t *testing.T) {
	donut := search.Ingredient{
		Name:         "Donut",
		BaseEffect:   "Calorie-Dense",
		Replacements: []search.Replacement{{Old: "Calorie-Dense", New: "Explosive"}},
	}

	result := search.Apply(search.NewEffectSet("Calorie-Dense"), donut, search.SkipSelfTarget)

	assert.Equal(t, []string{"Explosive"}, result.Sorted())
}

func TestApply_ReplaceAlwaysAppliesSelfTargetingRule(t *testing.T) {
	donut := search.Ingredient{
		Name:         "Donut",
		BaseEffect:   "Calorie-Dense",
		Replacements: []search.Replacement{{Old: "Calorie-Dense", New: "Explosive"}},
	}

	result := search.Apply(search.NewEffectSet(), donut, search.ReplaceAlways)

	assert.Equal(t, []string{"Explosive"}, result.Sorted())
}

func TestApply_RulesChainWithinOneApplication(t *testing.T) {
	// The second rule consumes the effect the first rule just produced.
	ing := search.Ingredient{
		Name:       "Chained",
		BaseEffect: "Base",
		Replacements: []search.Replacement{
			{Old: "Alpha", New: "Beta"},
			{Old: "Beta", New: "Gamma"},
		},
	}

	result := search.Apply(search.NewEffectSet("Alpha"), ing, search.SkipSelfTarget)

	assert.Equal(t, []string{"Base", "Gamma"}, result.Sorted())
}

func TestApply_RuleForAbsentEffectIsNoOp(t *testing.T) {
	ing := search.Ingredient{
		Name:         "Viagra",
		BaseEffect:   "Tropic Thunder",
		Replacements: []search.Replacement{{Old: "Athletic", New: "Sneaky"}},
	}

	result := search.Apply(search.NewEffectSet("Calming"), ing, search.SkipSelfTarget)

	assert.Equal(t, []string{"Calming", "Tropic Thunder"}, result.Sorted())
}

func TestEffectSetKey_IsOrderIndependent(t *testing.T) {
	a := search.NewEffectSet("Foggy", "Calming", "Toxic")
	b := search.NewEffectSet("Toxic", "Foggy", "Calming")

	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), search.NewEffectSet("Foggy", "Calming").Key())
}
