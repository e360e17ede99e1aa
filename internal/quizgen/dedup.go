package quizgen

// FilterSeen returns the subsequence of items that are not structurally
// equal to any item in history, preserving input order. Pure: neither
// argument is mutated. Prompt-side dedup asks the model not to repeat
// itself; this filter is the guarantee.
func FilterSeen(items, history []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !containsItem(history, it) {
			out = append(out, it)
		}
	}
	return out
}

func containsItem(items []Item, target Item) bool {
	for _, it := range items {
		if it.Equal(target) {
			return true
		}
	}
	return false
}
