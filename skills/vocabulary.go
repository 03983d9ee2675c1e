package skills

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrEmptyVocabulary is returned when a vocabulary is built with no entries.
	ErrEmptyVocabulary = errors.New("vocabulary requires at least one entry")

	// ErrInvalidEntry is returned when an entry normalizes to the empty string.
	ErrInvalidEntry = errors.New("invalid vocabulary entry")

	// ErrDuplicateEntry is returned when two entries normalize to the same form.
	ErrDuplicateEntry = errors.New("duplicate vocabulary entry")
)

// DefaultAliases maps common punctuated skill forms to stable canonical
// tokens. Alias substitution runs before punctuation stripping so the
// punctuated forms survive normalization.
var DefaultAliases = map[string]string{
	"c++":     "cpp",
	"c#":      "csharp",
	"node.js": "nodejs",
	"ci/cd":   "cicd",
}

// DefaultEntries is the curated skill vocabulary, in canonical form.
var DefaultEntries = []string{
	"python", "java", "javascript", "typescript", "cpp", "csharp", "ruby", "go", "rust", "php",
	"sql", "nosql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"django", "flask", "fastapi", "spring", "react", "angular", "vue", "nodejs", "express",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible",
	"git", "cicd", "jenkins", "github actions", "gitlab",
	"machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch",
	"agile", "scrum", "jira", "api", "rest", "graphql", "microservices",
	"html", "css", "sass", "webpack", "babel",
	"linux", "bash", "shell scripting", "nginx", "apache",
}

var (
	punctPattern = regexp.MustCompile(`[^\w\s]`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Vocabulary is a validated, precompiled skill vocabulary.
// It is immutable after construction and safe for concurrent use.
type Vocabulary struct {
	aliases   map[string]string
	multiWord []string
	// single-word entries use word-boundary patterns to avoid
	// partial-token false positives
	singleWord map[string]*regexp.Regexp
}

// NewVocabulary builds a vocabulary from entries and an alias table.
// Entries are normalized and validated up front: empty or duplicate
// normalized forms fail construction rather than silently misbehaving
// at extraction time.
func NewVocabulary(entries []string, aliases map[string]string) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if aliases == nil {
		aliases = map[string]string{}
	}

	v := &Vocabulary{
		aliases:    aliases,
		singleWord: make(map[string]*regexp.Regexp),
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		normalized := v.Normalize(entry)
		if normalized == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, entry)
		}
		if seen[normalized] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntry, normalized)
		}
		seen[normalized] = true

		if strings.Contains(normalized, " ") {
			v.multiWord = append(v.multiWord, normalized)
		} else {
			pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(normalized) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidEntry, entry, err)
			}
			v.singleWord[normalized] = pattern
		}
	}

	sort.Strings(v.multiWord)
	return v, nil
}

// DefaultVocabulary returns the curated vocabulary.
// Construction cannot fail for the built-in entry list.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultEntries, DefaultAliases)
	if err != nil {
		panic(err)
	}
	return v
}

// Normalize lowercases text, substitutes known aliases and strips
// punctuation to whitespace.
func (v *Vocabulary) Normalize(text string) string {
	t := strings.ToLower(text)
	for src, dst := range v.aliases {
		t = strings.ReplaceAll(t, src, dst)
	}
	t = punctPattern.ReplaceAllString(t, " ")
	t = spacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
