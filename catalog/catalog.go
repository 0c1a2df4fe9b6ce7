package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/sparkfel/schedule1-reverse-search/search"
)

// DefaultFile is where the scraper writes and the loader reads the
// ingredient catalog.
const DefaultFile = "interactions.json"

// IngredientPrices is the fixed per-ingredient price table.
var IngredientPrices = map[string]int{
	"Cuke":         2,
	"Banana":       2,
	"Paracetamol":  3,
	"Donut":        3,
	"Viagra":       4,
	"Mouth Wash":   4,
	"Flu Medicine": 5,
	"Gasoline":     5,
	"Energy Drink": 6,
	"Motor Oil":    6,
	"Mega Bean":    7,
	"Chili":        7,
	"Battery":      8,
	"Iodine":       8,
	"Addy":         9,
	"Horse Semen":  9,
}

// rawIngredient mirrors one catalog file record: a base effect plus an
// ordered list of [old, new] replacement pairs.
type rawIngredient struct {
	BaseEffect   string      `json:"base_effect"`
	Replacements [][2]string `json:"replacements"`
}

// Load reads the ingredient catalog from a JSON file and merges in the
// fixed price table. Ingredients missing from the price table are kept
// with a zero price rather than rejected.
func Load(path string) (search.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	raw := make(map[string]rawIngredient)
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat := make(search.Catalog, len(raw))
	for name, r := range raw {
		ing := search.Ingredient{
			Name:       name,
			BaseEffect: r.BaseEffect,
			Price:      IngredientPrices[name],
		}
		for _, pair := range r.Replacements {
			ing.Replacements = append(ing.Replacements, search.Replacement{
				Old: pair[0],
				New: pair[1],
			})
		}
		cat[name] = ing
	}
	return cat, nil
}

// Save writes a catalog back to disk in the loader's file format.
func Save(path string, cat search.Catalog) error {
	raw := make(map[string]rawIngredient, len(cat))
	for name, ing := range cat {
		r := rawIngredient{
			BaseEffect:   ing.BaseEffect,
			Replacements: [][2]string{},
		}
		for _, rep := range ing.Replacements {
			r.Replacements = append(r.Replacements, [2]string{rep.Old, rep.New})
		}
		raw[name] = r
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// AllEffects enumerates every effect the catalog can put on a product:
// base effects plus both sides of every replacement rule. Sorted, for the
// selection form.
func AllEffects(cat search.Catalog) []string {
	set := make(map[string]bool)
	for _, ing := range cat {
		set[ing.BaseEffect] = true
		for _, r := range ing.Replacements {
			set[r.Old] = true
			set[r.New] = true
		}
	}
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Ensure loads the catalog at path, running the scraper first when the
// file does not exist yet.
func Ensure(path string) (search.Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("Catalog file not found. Running scraper...")
		if err := Run(path); err != nil {
			return nil, fmt.Errorf("failed to run scraper: %w", err)
		}
	}
	return Load(path)
}
