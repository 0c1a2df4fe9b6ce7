package search

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// EffectSet is an unordered, deduplicated collection of effect names.
type EffectSet map[string]bool

// NewEffectSet builds a set from the given effect names.
func NewEffectSet(effects ...string) EffectSet {
	set := make(EffectSet, len(effects))
	for _, e := range effects {
		set[e] = true
	}
	return set
}

// Clone returns an independent copy of the set.
func (s EffectSet) Clone() EffectSet {
	next := make(EffectSet, len(s)+1)
	for e := range s {
		next[e] = true
	}
	return next
}

// ContainsAll reports whether every listed effect is in the set.
func (s EffectSet) ContainsAll(effects []string) bool {
	for _, e := range effects {
		if !s[e] {
			return false
		}
	}
	return true
}

// Sorted returns the effects in lexicographic order.
func (s EffectSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Key returns a canonical string for the set, usable as a deduplication
// key. Two sets with the same elements always produce the same key.
func (s EffectSet) Key() string {
	return strings.Join(s.Sorted(), "|")
}

// Replacement is one effect rewrite rule of an ingredient. Rules are
// applied in catalog order and may chain within a single application.
type Replacement struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Ingredient is a priced catalog entry that deterministically transforms
// an effect set when mixed in.
type Ingredient struct {
	Name         string        `json:"name"`
	BaseEffect   string        `json:"base_effect"`
	Replacements []Replacement `json:"replacements"`
	Price        int           `json:"price"`
}

// Catalog maps ingredient name to its record. Treated as immutable for
// the duration of a search.
type Catalog map[string]Ingredient

// Names returns the catalog's ingredient names in lexicographic order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mode selects the optimization objective.
type Mode string

const (
	// ModeCost minimizes total ingredient price among valid recipes.
	ModeCost Mode = "cost"
	// ModeProfit maximizes best final price minus cost among valid recipes.
	ModeProfit Mode = "profit"
)

// ReplacementMode picks which of the two observed replacement semantics
// to use for rules that target their own ingredient's base effect.
type ReplacementMode int

const (
	// SkipSelfTarget skips a rule whose old effect is the base effect the
	// same application just introduced. This matches the game.
	SkipSelfTarget ReplacementMode = iota
	// ReplaceAlways applies every rule unconditionally.
	ReplaceAlways
)

// Progress is one search progress snapshot.
type Progress struct {
	Depth    int           `json:"depth"`
	States   int           `json:"states"`
	MaxDepth int           `json:"maxDepth"`
	Elapsed  time.Duration `json:"elapsed"`
}

// ProgressFunc receives progress snapshots while a search runs. It is
// called from the searching goroutine's coordinator; no fixed cadence is
// guaranteed, and snapshots produced by different workers may interleave
// with marginally out-of-order Elapsed values.
type ProgressFunc func(Progress)

// Request holds the parameters of one search invocation.
type Request struct {
	// RequiredEffects the recipe must produce. May be empty, in which
	// case any non-empty recipe is a candidate.
	RequiredEffects []string
	Catalog         Catalog
	Mode            Mode
	// Progress, when non-nil, receives snapshots during the search.
	Progress ProgressFunc
	// Timeout bounds the whole search. Zero means DefaultTimeout.
	Timeout  time.Duration
	MinDepth int
	MaxDepth int
	// AllowedIngredients restricts expansion to a catalog subset.
	// Nil means the full catalog.
	AllowedIngredients []string
	Replacement        ReplacementMode
}

// Solution is a recipe that satisfies a search request.
type Solution struct {
	Path    []string  `json:"path"`
	Effects EffectSet `json:"-"`
	Cost    int       `json:"cost"`
	Profit  float64   `json:"profit"`
}

var (
	// ErrEmptyCatalog is returned when the catalog has no ingredients.
	ErrEmptyCatalog = errors.New("search: empty catalog")
	// ErrDepthRange is returned when the depth bounds are unusable.
	ErrDepthRange = errors.New("search: invalid depth range")
	// ErrUnknownMode is returned for an optimization mode that is
	// neither cost nor profit.
	ErrUnknownMode = errors.New("search: unknown optimization mode")
	// ErrUnknownIngredient is returned when the allow-list names an
	// ingredient missing from the catalog.
	ErrUnknownIngredient = errors.New("search: unknown ingredient")
	// ErrUnknownProduct is returned for a base product missing from the
	// price table.
	ErrUnknownProduct = errors.New("search: unknown base product")
)
