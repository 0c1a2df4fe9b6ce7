package search

// Apply mixes one ingredient into an effect set and returns the resulting
// set. The input set is never modified.
//
// The ingredient's base effect is added first, then its replacement rules
// run in catalog order. A rule rewrites its old effect only when that
// effect is currently in the set, so rules may chain onto effects produced
// by earlier rules in the same application.
func Apply(effects EffectSet, ing Ingredient, mode ReplacementMode) EffectSet {
	next := effects.Clone()

	// Whether the base effect was there before this application decides
	// if a self-targeting rule may fire.
	alreadyPresent := next[ing.BaseEffect]
	next[ing.BaseEffect] = true

	for _, r := range ing.Replacements {
		if mode == SkipSelfTarget && !alreadyPresent && r.Old == ing.BaseEffect {
			// The base effect was just introduced by this application;
			// its own ingredient must not immediately replace it.
			continue
		}
		if next[r.Old] {
			delete(next, r.Old)
			next[r.New] = true
		}
	}

	return next
}
