package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/skills"
)

// BuildProfile constructs a profile from a document's filename and
// extracted text. Identity derives from the filename, so re-ingesting the
// same document overwrites rather than duplicates.
func BuildProfile(filename, text string, vocab *skills.Vocabulary) (*core.Profile, error) {
	profile := &core.Profile{
		Id:       core.IDFromContent(filename),
		Filename: filename,
		FullText: text,
		Sections: ParseSections(text),
		SkillSet: vocab.Extract(text),
	}
	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// LoadDirectory builds profiles from every .txt file in dir, ordered by
// filename. Unreadable or empty files fail the whole load; partial corpora
// would silently skew ranking.
func LoadDirectory(dir string, vocab *skills.Vocabulary) ([]*core.Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	profiles := make([]*core.Profile, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		profile, err := BuildProfile(name, string(data), vocab)
		if err != nil {
			return nil, fmt.Errorf("build profile from %s: %w", name, err)
		}
		profiles = append(profiles, profile)
	}

	slog.Debug("loaded profiles from directory", "dir", dir, "count", len(profiles))
	return profiles, nil
}
