package core

import (
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	id1 := IDFromContent("resume_001.txt")
	id2 := IDFromContent("resume_001.txt")
	id3 := IDFromContent("resume_002.txt")

	if id1 != id2 {
		t.Errorf("identical content produced different IDs: %d != %d", id1, id2)
	}
	if id1 == id3 {
		t.Errorf("different content produced identical IDs: %d", id1)
	}
	if id1 == 0 {
		t.Error("ID should not be zero for non-empty content")
	}
}

func TestFingerprintFromContent(t *testing.T) {
	fp1 := FingerprintFromContent("who knows python?")
	fp2 := FingerprintFromContent("who knows python?")
	fp3 := FingerprintFromContent("who knows go?")

	if fp1 != fp2 {
		t.Errorf("identical content produced different fingerprints")
	}
	if fp1 == fp3 {
		t.Errorf("different content produced identical fingerprints")
	}
	if len(fp1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(fp1))
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.5, 0.5},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -0.3, 0},
		{"above one", 1.7, 1},
		{"nan", nan(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.in); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func TestRound4(t *testing.T) {
	if got := Round4(0.123456); got != 0.1235 {
		t.Errorf("Round4(0.123456) = %v, want 0.1235", got)
	}
	if got := Round4(0.70005); got != 0.7001 {
		t.Errorf("Round4(0.70005) = %v, want 0.7001", got)
	}
}

func TestCacheEntryExpired(t *testing.T) {
	now := time.Now()
	entry := &CacheEntry{
		Fingerprint: "abc",
		Response:    "answer",
		CreatedAt:   now.Add(-30 * time.Minute),
	}

	if entry.Expired(now, time.Hour) {
		t.Error("entry within TTL reported as expired")
	}
	if !entry.Expired(now.Add(31*time.Minute), time.Hour) {
		t.Error("entry past TTL not reported as expired")
	}
}

func TestRankedResultSetLookup(t *testing.T) {
	rs := &RankedResultSet{
		Results: []ScoredResult{
			{ProfileId: 1, Filename: "a.txt", Rank: 1},
			{ProfileId: 2, Filename: "b.txt", Rank: 2},
		},
	}

	m := rs.Lookup()
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m[2].Filename != "b.txt" {
		t.Errorf("lookup returned wrong result: %+v", m[2])
	}
}

func TestVectorIndexStats(t *testing.T) {
	built := time.Now()
	idx := &VectorIndex{
		Dimension: 384,
		BuiltAt:   built,
		Ids:       []ID{1, 2, 3},
		Vectors:   [][]float32{{1}, {2}, {3}},
	}

	stats := idx.Stats()
	if stats.Dimension != 384 || stats.VectorCount != 3 || !stats.BuiltAt.Equal(built) {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestProfileHasSkill(t *testing.T) {
	p := &Profile{SkillSet: []string{"docker", "python", "sql"}}
	if !p.HasSkill("python") {
		t.Error("expected python to be present")
	}
	if p.HasSkill("rust") {
		t.Error("did not expect rust to be present")
	}
}
