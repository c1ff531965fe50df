package match

import "sort"

// MinSimilarity is the lowest Similarity score a candidate needs to be suggested.
const MinSimilarity = 0.5

// MaxSuggestions caps the number of names returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the candidates most similar to name, best first.
// Exact matches are never suggested; ties are broken alphabetically.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for i := 0; i < len(ranked) && i < MaxSuggestions; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
