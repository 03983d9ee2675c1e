package skills

import (
	"sort"
	"strings"
)

// Extract returns the sorted set of vocabulary skills found in text.
// Duplicates collapse; empty text yields an empty set.
func (v *Vocabulary) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := v.Normalize(text)
	matched := make(map[string]bool)

	for _, entry := range v.multiWord {
		if strings.Contains(normalized, entry) {
			matched[entry] = true
		}
	}
	for entry, pattern := range v.singleWord {
		if pattern.MatchString(normalized) {
			matched[entry] = true
		}
	}

	out := make([]string, 0, len(matched))
	for skill := range matched {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// OverlapScore computes the fraction of query skills also present in
// the profile skill set. An empty query yields 0, never NaN.
func OverlapScore(querySkills, profileSkills []string) float64 {
	if len(querySkills) == 0 {
		return 0
	}

	profileSet := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		profileSet[s] = true
	}

	var hits int
	for _, s := range querySkills {
		if profileSet[s] {
			hits++
		}
	}
	return float64(hits) / float64(len(querySkills))
}

// MatchedMissing splits query skills into those present in the profile
// ("matched") and those absent ("missing"). Both lists come back sorted
// alphabetically for reproducible explainability payloads.
func MatchedMissing(querySkills, profileSkills []string) (matched, missing []string) {
	profileSet := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		profileSet[s] = true
	}

	matched = make([]string, 0, len(querySkills))
	missing = make([]string, 0, len(querySkills))
	for _, s := range querySkills {
		if profileSet[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
