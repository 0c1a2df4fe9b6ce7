package search

// BaseProduct is a sellable product the recipe's effects are applied to.
type BaseProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BaseProducts is the fixed product price table. Order matters: profit
// ties between products break in favor of the earlier entry.
var BaseProducts = []BaseProduct{
	{"OG Kush", 30},
	{"Sour Diesel", 35},
	{"Green Crack", 40},
	{"Grandaddy Purple", 45},
	{"Poor Quality Meth", 60},
	{"Meth", 80},
	{"High-Quality Meth", 110},
	{"Cocaine", 150},
}

// EffectMultipliers is the fixed per-effect price multiplier table.
// Effects missing from it contribute nothing to the final price.
var EffectMultipliers = map[string]float64{
	"Anti-Gravity":      0.54,
	"Athletic":          0.32,
	"Balding":           0.30,
	"Bright-Eyed":       0.40,
	"Calming":           0.10,
	"Calorie-Dense":     0.28,
	"Cyclopean":         0.56,
	"Disorienting":      0.00,
	"Electrifying":      0.50,
	"Energizing":        0.22,
	"Euphoric":          0.18,
	"Explosive":         0.00,
	"Focused":           0.16,
	"Foggy":             0.36,
	"Gingeritis":        0.20,
	"Glowing":           0.48,
	"Jennerising":       0.42,
	"Laxative":          0.00,
	"Long Faced":        0.52,
	"Munchies":          0.12,
	"Paranoia":          0.00,
	"Refreshing":        0.14,
	"Schizophrenia":     0.00,
	"Sedating":          0.26,
	"Seizure-Inducing":  0.00,
	"Shrinking":         0.60,
	"Slippery":          0.34,
	"Smelly":            0.00,
	"Sneaky":            0.24,
	"Spicy":             0.38,
	"Thought-Provoking": 0.44,
	"Toxic":             0.00,
	"Tropic Thunder":    0.46,
	"Zombifying":        0.58,
}

// ProductByName looks up a base product in the price table.
func ProductByName(name string) (BaseProduct, error) {
	for _, p := range BaseProducts {
		if p.Name == name {
			return p, nil
		}
	}
	return BaseProduct{}, ErrUnknownProduct
}
