package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkfel/schedule1-reverse-search/search"
)

func testCatalog() search.Catalog {
	return search.Catalog{
		"Cuke":   {Name: "Cuke", BaseEffect: "Energizing", Price: 2},
		"Chili":  {Name: "Chili", BaseEffect: "Spicy", Price: 7},
		"Iodine": {Name: "Iodine", BaseEffect: "Jennerising", Price: 8},
	}
}

func TestRecipeCost_ChargesEveryOccurrence(t *testing.T) {
	cat := testCatalog()

	cost := search.RecipeCost(cat, []string{"Cuke", "Chili", "Cuke"})

	assert.Equal(t, 11, cost)
}

func TestRecipeCost_EmptyPath(t *testing.T) {
	assert.Equal(t, 0, search.RecipeCost(testCatalog(), nil))
}

func TestFinalPrice_SumsMultipliers(t *testing.T) {
	product := search.BaseProduct{Name: "Meth", Price: 80}
	effects := search.NewEffectSet("Shrinking", "Energizing") // 0.60 + 0.22

	price := search.FinalPrice(product, effects)

	assert.InDelta(t, 80*(1+0.82), price, 1e-9)
}

func TestFinalPrice_UnknownEffectContributesNothing(t *testing.T) {
	product := search.BaseProduct{Name: "Meth", Price: 80}
	effects := search.NewEffectSet("Shrinking", "Totally Made Up")

	price := search.FinalPrice(product, effects)

	assert.InDelta(t, 80*(1+0.60), price, 1e-9)
}

func TestBestProfit_PicksMostProfitableProduct(t *testing.T) {
	// With a positive multiplier sum, the highest base price wins.
	effects := search.NewEffectSet("Shrinking")

	product, profit := search.BestProfit(effects, 10)

	assert.Equal(t, "Cocaine", product.Name)
	assert.InDelta(t, 150*1.60-10, profit, 1e-9)
}

func TestBestProfit_NegativeProfitsStillRanked(t *testing.T) {
	// A huge cost makes every product a loss; the least bad one wins.
	product, profit := search.BestProfit(search.NewEffectSet(), 1000)

	assert.Equal(t, "Cocaine", product.Name)
	assert.InDelta(t, 150-1000, profit, 1e-9)
}

func TestProductByName(t *testing.T) {
	p, err := search.ProductByName("OG Kush")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, p.Price, 1e-9)

	_, err = search.ProductByName("Oregano")
	assert.ErrorIs(t, err, search.ErrUnknownProduct)
}
