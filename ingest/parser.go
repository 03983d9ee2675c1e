package ingest

import (
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/talentsift/core"
)

// Heading patterns per canonical section, matched case-insensitively
// against the start of a trimmed line.
var sectionPatterns = map[string][]*regexp.Regexp{
	"summary": {
		regexp.MustCompile(`(?i)^(summary|profile|objective|about|overview|executive\s+summary)`),
		regexp.MustCompile(`(?i)^(professional\s+summary|career\s+summary|summary\s+of\s+qualifications)`),
	},
	"experience": {
		regexp.MustCompile(`(?i)^(experience|work\s+experience|employment|professional\s+experience|work\s+history)`),
		regexp.MustCompile(`(?i)^(career\s+history|employment\s+history|professional\s+background)`),
	},
	"skills": {
		regexp.MustCompile(`(?i)^(skills|technical\s+skills|core\s+skills|competencies|expertise)`),
		regexp.MustCompile(`(?i)^(key\s+skills|skill\s+set|technologies|tools\s+and\s+technologies)`),
	},
	"education": {
		regexp.MustCompile(`(?i)^(education|academic\s+background|qualifications|academic\s+qualifications)`),
		regexp.MustCompile(`(?i)^(educational\s+background|degrees|academics)`),
	},
	"projects": {
		regexp.MustCompile(`(?i)^(projects|key\s+projects|notable\s+projects|project\s+experience)`),
		regexp.MustCompile(`(?i)^(selected\s+projects|project\s+portfolio)`),
	},
}

// sectionOrder fixes iteration order so parsing is deterministic when a
// line could match more than one section.
var sectionOrder = []string{"summary", "experience", "skills", "education", "projects"}

type heading struct {
	line    int
	section string
}

// ParseSections splits resume text into canonical sections by heading
// detection. Duplicate headings of the same section merge; text outside
// any detected section, including everything before the first heading,
// lands in Other. Empty input yields all-empty sections, never an error.
func ParseSections(text string) core.Sections {
	if strings.TrimSpace(text) == "" {
		return core.Sections{}
	}

	lines := strings.Split(text, "\n")
	headings := findHeadings(lines)

	if len(headings) == 0 {
		return core.Sections{Other: strings.TrimSpace(text)}
	}

	content := make(map[string][]string)
	covered := make([]bool, len(lines))

	for i, h := range headings {
		covered[h.line] = true

		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].line
		}

		body := strings.TrimSpace(strings.Join(lines[h.line+1:end], "\n"))
		for j := h.line + 1; j < end; j++ {
			covered[j] = true
		}
		if body != "" {
			content[h.section] = append(content[h.section], body)
		}
	}

	var other []string
	for i, line := range lines {
		if !covered[i] && strings.TrimSpace(line) != "" {
			other = append(other, line)
		}
	}

	join := func(section string) string {
		return strings.Join(content[section], "\n\n")
	}

	return core.Sections{
		Summary:    join("summary"),
		Experience: join("experience"),
		Skills:     join("skills"),
		Education:  join("education"),
		Projects:   join("projects"),
		Other:      strings.TrimSpace(strings.Join(other, "\n")),
	}
}

func findHeadings(lines []string) []heading {
	var headings []heading
	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, section := range sectionOrder {
			if matchesSection(section, trimmed) {
				headings = append(headings, heading{line: idx, section: section})
				break
			}
		}
	}
	sort.Slice(headings, func(i, j int) bool { return headings[i].line < headings[j].line })
	return headings
}

func matchesSection(section, line string) bool {
	for _, pattern := range sectionPatterns[section] {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
