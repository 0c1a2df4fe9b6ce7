package search

// RecipeCost sums the catalog price of every ingredient in the path.
// Repeated ingredients are charged per occurrence.
func RecipeCost(catalog Catalog, path []string) int {
	total := 0
	for _, name := range path {
		total += catalog[name].Price
	}
	return total
}

// FinalPrice computes the selling price of a product carrying the given
// effects: base price times one plus the summed effect multipliers.
func FinalPrice(product BaseProduct, effects EffectSet) float64 {
	total := 0.0
	for e := range effects {
		total += EffectMultipliers[e]
	}
	return product.Price * (1 + total)
}

// BestProfit evaluates final price minus cost for every base product and
// returns the most profitable one. Ties break by table order.
func BestProfit(effects EffectSet, cost int) (BaseProduct, float64) {
	var best BaseProduct
	bestProfit := 0.0
	for i, p := range BaseProducts {
		profit := FinalPrice(p, effects) - float64(cost)
		if i == 0 || profit > bestProfit {
			best = p
			bestProfit = profit
		}
	}
	return best, bestProfit
}
