// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Filename must not be empty
//   - FullText must not be empty
//
// NOT validated (populated by collaborators):
//   - Sections (may all be empty when the parser found no headings)
//   - SkillSet (may be empty when no vocabulary entry matched)
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyFilename)
	}

	if strings.TrimSpace(profile.FullText) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyFullText)
	}

	return nil
}

// ValidateRankQuery validates a batch ranking request.
func ValidateRankQuery(query RankQuery) error {
	if strings.TrimSpace(query.Text) == "" {
		return ErrEmptyJobDescription
	}
	if query.TopK < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopK, query.TopK)
	}
	return nil
}

// ValidateRetrievalQuery validates a conversational retrieval request.
func ValidateRetrievalQuery(query RetrievalQuery) error {
	if strings.TrimSpace(query.Text) == "" {
		return ErrEmptyQuery
	}
	if query.TopK < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopK, query.TopK)
	}
	return nil
}

// NormalizeSkills lowercases, trims, deduplicates and sorts a skill set.
// Every skill set passes through this before it participates in scoring.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
