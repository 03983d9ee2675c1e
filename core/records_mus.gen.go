// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptrvmtXRXBEltzuAT8Y3BpHuAΞΞ   = ord.NewPtrSer[float64](varint.Float64)
	sliceDvKT6KcOnAEpfDodSiXmkAΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceOZT4DISrp70hOvvΣP4ONoAΞΞ = ord.NewSliceSer[string](ord.String)
	sliceUjCIApaOΣJAnVKpObzR19wΞΞ = ord.NewSliceSer[[]float32](sliceDvKT6KcOnAEpfDodSiXmkAΞΞ)
	slicexw9ΣzpoqvKDDΔeePWU33LwΞΞ = ord.NewSliceSer[ID](IDMUS)
	sliceΔ5p73WwRG7lpM7r4oqJc0gΞΞ = ord.NewSliceSer[ScoredResult](ScoredResultMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SectionsMUS = sectionsMUS{}

type sectionsMUS struct{}

func (s sectionsMUS) Marshal(v Sections, bs []byte) (n int) {
	n = ord.String.Marshal(v.Summary, bs)
	n += ord.String.Marshal(v.Experience, bs[n:])
	n += ord.String.Marshal(v.Skills, bs[n:])
	n += ord.String.Marshal(v.Education, bs[n:])
	n += ord.String.Marshal(v.Projects, bs[n:])
	return n + ord.String.Marshal(v.Other, bs[n:])
}

func (s sectionsMUS) Unmarshal(bs []byte) (v Sections, n int, err error) {
	v.Summary, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Experience, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Projects, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Other, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sectionsMUS) Size(v Sections) (size int) {
	size = ord.String.Size(v.Summary)
	size += ord.String.Size(v.Experience)
	size += ord.String.Size(v.Skills)
	size += ord.String.Size(v.Education)
	size += ord.String.Size(v.Projects)
	return size + ord.String.Size(v.Other)
}

func (s sectionsMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ProfileMUS = profileMUS{}

type profileMUS struct{}

func (s profileMUS) Marshal(v Profile, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += ord.String.Marshal(v.FullText, bs[n:])
	n += SectionsMUS.Marshal(v.Sections, bs[n:])
	return n + sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Marshal(v.SkillSet, bs[n:])
}

func (s profileMUS) Unmarshal(bs []byte) (v Profile, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Sections, n1, err = SectionsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SkillSet, n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s profileMUS) Size(v Profile) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Filename)
	size += ord.String.Size(v.FullText)
	size += SectionsMUS.Size(v.Sections)
	return size + sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Size(v.SkillSet)
}

func (s profileMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SectionsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ScoredResultMUS = scoredResultMUS{}

type scoredResultMUS struct{}

func (s scoredResultMUS) Marshal(v ScoredResult, bs []byte) (n int) {
	n = IDMUS.Marshal(v.ProfileId, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += varint.Float64.Marshal(v.LexicalScore, bs[n:])
	n += ptrvmtXRXBEltzuAT8Y3BpHuAΞΞ.Marshal(v.SemanticScore, bs[n:])
	n += varint.Float64.Marshal(v.SkillScore, bs[n:])
	n += varint.Float64.Marshal(v.CombinedScore, bs[n:])
	n += varint.Int.Marshal(v.Rank, bs[n:])
	n += sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Marshal(v.MatchedSkills, bs[n:])
	return n + sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Marshal(v.MissingSkills, bs[n:])
}

func (s scoredResultMUS) Unmarshal(bs []byte) (v ScoredResult, n int, err error) {
	v.ProfileId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LexicalScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SemanticScore, n1, err = ptrvmtXRXBEltzuAT8Y3BpHuAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SkillScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CombinedScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rank, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MatchedSkills, n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MissingSkills, n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s scoredResultMUS) Size(v ScoredResult) (size int) {
	size = IDMUS.Size(v.ProfileId)
	size += ord.String.Size(v.Filename)
	size += varint.Float64.Size(v.LexicalScore)
	size += ptrvmtXRXBEltzuAT8Y3BpHuAΞΞ.Size(v.SemanticScore)
	size += varint.Float64.Size(v.SkillScore)
	size += varint.Float64.Size(v.CombinedScore)
	size += varint.Int.Size(v.Rank)
	size += sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Size(v.MatchedSkills)
	return size + sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Size(v.MissingSkills)
}

func (s scoredResultMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrvmtXRXBEltzuAT8Y3BpHuAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var WeightsMUS = weightsMUS{}

type weightsMUS struct{}

func (s weightsMUS) Marshal(v Weights, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.Lexical, bs)
	return n + varint.Float64.Marshal(v.Skill, bs[n:])
}

func (s weightsMUS) Unmarshal(bs []byte) (v Weights, n int, err error) {
	v.Lexical, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Skill, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s weightsMUS) Size(v Weights) (size int) {
	size = varint.Float64.Size(v.Lexical)
	return size + varint.Float64.Size(v.Skill)
}

func (s weightsMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var RankedResultSetMUS = rankedResultSetMUS{}

type rankedResultSetMUS struct{}

func (s rankedResultSetMUS) Marshal(v RankedResultSet, bs []byte) (n int) {
	n = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Marshal(v.JDSkills, bs)
	n += sliceΔ5p73WwRG7lpM7r4oqJc0gΞΞ.Marshal(v.Results, bs[n:])
	n += WeightsMUS.Marshal(v.Weights, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.RankedAt, bs[n:])
}

func (s rankedResultSetMUS) Unmarshal(bs []byte) (v RankedResultSet, n int, err error) {
	v.JDSkills, n, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Results, n1, err = sliceΔ5p73WwRG7lpM7r4oqJc0gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Weights, n1, err = WeightsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RankedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s rankedResultSetMUS) Size(v RankedResultSet) (size int) {
	size = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Size(v.JDSkills)
	size += sliceΔ5p73WwRG7lpM7r4oqJc0gΞΞ.Size(v.Results)
	size += WeightsMUS.Size(v.Weights)
	return size + raw.TimeUnixMicro.Size(v.RankedAt)
}

func (s rankedResultSetMUS) Skip(bs []byte) (n int, err error) {
	n, err = sliceOZT4DISrp70hOvvΣP4ONoAΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceΔ5p73WwRG7lpM7r4oqJc0gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = WeightsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var VectorIndexMUS = vectorIndexMUS{}

type vectorIndexMUS struct{}

func (s vectorIndexMUS) Marshal(v VectorIndex, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Dimension, bs)
	n += raw.TimeUnixMicro.Marshal(v.BuiltAt, bs[n:])
	n += slicexw9ΣzpoqvKDDΔeePWU33LwΞΞ.Marshal(v.Ids, bs[n:])
	return n + sliceUjCIApaOΣJAnVKpObzR19wΞΞ.Marshal(v.Vectors, bs[n:])
}

func (s vectorIndexMUS) Unmarshal(bs []byte) (v VectorIndex, n int, err error) {
	v.Dimension, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.BuiltAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ids, n1, err = slicexw9ΣzpoqvKDDΔeePWU33LwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vectors, n1, err = sliceUjCIApaOΣJAnVKpObzR19wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vectorIndexMUS) Size(v VectorIndex) (size int) {
	size = varint.Int.Size(v.Dimension)
	size += raw.TimeUnixMicro.Size(v.BuiltAt)
	size += slicexw9ΣzpoqvKDDΔeePWU33LwΞΞ.Size(v.Ids)
	return size + sliceUjCIApaOΣJAnVKpObzR19wΞΞ.Size(v.Vectors)
}

func (s vectorIndexMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexw9ΣzpoqvKDDΔeePWU33LwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceUjCIApaOΣJAnVKpObzR19wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var CacheEntryMUS = cacheEntryMUS{}

type cacheEntryMUS struct{}

func (s cacheEntryMUS) Marshal(v CacheEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Fingerprint, bs)
	n += ord.String.Marshal(v.Response, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s cacheEntryMUS) Unmarshal(bs []byte) (v CacheEntry, n int, err error) {
	v.Fingerprint, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Response, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s cacheEntryMUS) Size(v CacheEntry) (size int) {
	size = ord.String.Size(v.Fingerprint)
	size += ord.String.Size(v.Response)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s cacheEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
