package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical
// content always maps to the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FingerprintFromContent generates a hex-encoded content hash used as a
// cache key for query text. Callers scope fingerprints to a collection
// by prefixing the collection name into the hashed content.
func FingerprintFromContent(text string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Sections holds the parsed sections of a profile document.
// Text the parser could not classify ends up in Other.
type Sections struct {
	Summary    string
	Experience string
	Skills     string
	Education  string
	Projects   string
	Other      string
}

// Profile represents one ingested candidate document.
// Profiles are immutable after creation; the skill set is lowercase,
// deduplicated and sorted.
type Profile struct {
	Id       ID
	Filename string
	FullText string
	Sections Sections
	SkillSet []string
}

// HasSkill reports whether the profile's skill set contains the given
// normalized skill. Skill sets are small, so a linear scan is fine.
func (p *Profile) HasSkill(skill string) bool {
	for _, s := range p.SkillSet {
		if s == skill {
			return true
		}
	}
	return false
}

// ScoredResult is one ranked candidate with its component scores and
// explainability. All scores lie in [0, 1]. SemanticScore is nil in
// batch-ranking mode, where no embedding signal participates.
type ScoredResult struct {
	ProfileId     ID
	Filename      string
	LexicalScore  float64
	SemanticScore *float64
	SkillScore    float64
	CombinedScore float64
	Rank          int
	MatchedSkills []string
	MissingSkills []string
}

// Weights records the score combination weights used for a ranking run.
type Weights struct {
	Lexical float64
	Skill   float64
}

// RankedResultSet is the persisted artifact of one batch ranking run.
// It is written only after the full corpus has been scored.
type RankedResultSet struct {
	JDSkills []string
	Results  []ScoredResult
	Weights  Weights
	RankedAt time.Time
}

// Lookup builds a profile-id index over the result set for re-ranking.
func (rs *RankedResultSet) Lookup() map[ID]*ScoredResult {
	m := make(map[ID]*ScoredResult, len(rs.Results))
	for i := range rs.Results {
		m[rs.Results[i].ProfileId] = &rs.Results[i]
	}
	return m
}

// DefaultWorstRank is the rank position assumed for candidates that do
// not appear in a prior batch ranking.
const DefaultWorstRank = 999

// VectorIndex maps profile IDs to L2-normalized embedding vectors.
// Row i of Vectors belongs to Ids[i]. An index is immutable once built;
// profile-set changes require a full rebuild.
type VectorIndex struct {
	Dimension int
	BuiltAt   time.Time
	Ids       []ID
	Vectors   [][]float32
}

// VectorCount returns the number of vectors in the index.
func (x *VectorIndex) VectorCount() int {
	return len(x.Ids)
}

// Stats summarizes index build metadata for status reporting.
func (x *VectorIndex) Stats() IndexStats {
	return IndexStats{
		Dimension:   x.Dimension,
		VectorCount: x.VectorCount(),
		BuiltAt:     x.BuiltAt,
	}
}

// IndexStats is the build metadata exposed by the status operation.
type IndexStats struct {
	Dimension   int
	VectorCount int
	BuiltAt     time.Time
}

// CacheEntry is one memoized retrieval response.
type CacheEntry struct {
	Fingerprint string
	Response    string
	CreatedAt   time.Time
}

// Expired reports whether the entry is older than ttl at the given time.
func (e *CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) >= ttl
}

// Filters restricts retrieval candidates. All conditions are conjunctive.
//
// The rank-position bounds are intentionally inverted relative to their
// names: MinRankPosition retains candidates with rank <= its value (at
// least this good), MaxRankPosition retains candidates with rank >= its
// value (at most this good). Lower rank is better.
type Filters struct {
	MinRankPosition *int
	MaxRankPosition *int
	MinScore        *float64
	RequiredSkills  []string
}

// RankQuery is a one-shot batch ranking request against a job description.
// TopK of zero returns the full ordering.
type RankQuery struct {
	Text string
	TopK int
}

// RetrievalQuery is a conversational retrieval request.
type RetrievalQuery struct {
	Text           string
	TopK           int
	Filters        Filters
	IncludeContext bool
}

// Clamp01 clamps a score into [0, 1]. Every upstream signal passes
// through this before combination so a misbehaving signal cannot
// produce an out-of-range final score. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round4 rounds a score to 4 decimal places for reporting.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
