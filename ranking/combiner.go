package ranking

import "github.com/poiesic/talentsift/core"

// Batch ranking weights: lexical similarity against skill overlap.
const (
	BatchLexicalWeight = 0.7
	BatchSkillWeight   = 0.3
)

// Retrieval weights when a prior batch ranking exists.
const (
	RetrievalSemanticWeight = 0.4
	RetrievalPriorWeight    = 0.3
	RetrievalSkillWeight    = 0.3
)

// Retrieval weights when no batch ranking has been run.
const (
	FallbackSemanticWeight = 0.6
	FallbackSkillWeight    = 0.4
)

// BatchWeights returns the weight vector recorded with a batch result set.
func BatchWeights() core.Weights {
	return core.Weights{Lexical: BatchLexicalWeight, Skill: BatchSkillWeight}
}

// CombineBatch blends the boosted lexical score with the raw skill overlap.
func CombineBatch(lexical, skillOverlap float64) float64 {
	return core.Clamp01(BatchLexicalWeight*lexical + BatchSkillWeight*skillOverlap)
}

// CombineRetrieval blends semantic similarity, the prior batch score, and
// skill overlap. A nil prior means no batch ranking exists for the
// collection, and the prior weight is folded into the other two signals.
// When a ranking exists, callers pass a zero prior for candidates it does
// not cover so every candidate is weighed the same way.
func CombineRetrieval(semantic float64, priorBatch *float64, skillOverlap float64) float64 {
	if priorBatch != nil {
		return core.Clamp01(RetrievalSemanticWeight*semantic +
			RetrievalPriorWeight**priorBatch +
			RetrievalSkillWeight*skillOverlap)
	}
	return core.Clamp01(FallbackSemanticWeight*semantic + FallbackSkillWeight*skillOverlap)
}
