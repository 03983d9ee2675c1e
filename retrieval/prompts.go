package retrieval

import (
	"fmt"
	"strings"

	"github.com/poiesic/talentsift/core"
)

const systemPromptBase = `You are a recruiting assistant. You answer questions about a pool of
candidates using only the candidate context provided with each question.
Be concise and factual. Refer to candidates by filename. If the context
does not contain the information needed to answer, say so plainly instead
of guessing.`

const systemPromptWithRanking = systemPromptBase + `

The candidates were previously ranked against a job description. Each
candidate context includes that batch rank and score; treat lower rank
numbers as stronger prior matches.`

// SystemPrompt returns the generator system prompt, selecting the variant
// that explains batch ranks when a prior ranking informed the candidates.
func SystemPrompt(hasPriorRanking bool) string {
	if hasPriorRanking {
		return systemPromptWithRanking
	}
	return systemPromptBase
}

// maxContextChars bounds the per-candidate excerpt included in the prompt.
const maxContextChars = 1200

// UserPrompt assembles the question together with per-candidate context
// blocks. When includeContext is false only scores and skills are listed,
// not resume text.
func UserPrompt(question string, candidates []core.ScoredResult, profiles map[core.ID]*core.Profile, includeContext bool) string {
	var b strings.Builder

	b.WriteString("Candidate context:\n\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "--- Candidate %d: %s ---\n", i+1, c.Filename)
		fmt.Fprintf(&b, "Combined score: %.4f\n", c.CombinedScore)
		if c.SemanticScore != nil {
			fmt.Fprintf(&b, "Semantic similarity: %.4f\n", *c.SemanticScore)
		}
		if c.Rank > 0 && c.Rank != core.DefaultWorstRank {
			fmt.Fprintf(&b, "Batch rank: %d\n", c.Rank)
		}
		if len(c.MatchedSkills) > 0 {
			fmt.Fprintf(&b, "Matched skills: %s\n", strings.Join(c.MatchedSkills, ", "))
		}
		if len(c.MissingSkills) > 0 {
			fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(c.MissingSkills, ", "))
		}

		if includeContext {
			if profile, ok := profiles[c.ProfileId]; ok {
				excerpt := profile.FullText
				if len(excerpt) > maxContextChars {
					excerpt = excerpt[:maxContextChars] + "..."
				}
				b.WriteString("Resume excerpt:\n")
				b.WriteString(excerpt)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Question: ")
	b.WriteString(question)
	return b.String()
}

// emptyResultMessage is streamed when no candidate survives filtering.
const emptyResultMessage = "No candidates matched the query and filters. " +
	"Try relaxing the filters or rephrasing the question."
