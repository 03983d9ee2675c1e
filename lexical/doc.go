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


// Package lexical provides section-aware TF-IDF similarity scoring.
//
// A Model is fitted over n-gram tokens of a document corpus with
// sub-linear term-frequency scaling, smoothed inverse document
// frequency and English stop-word removal. The SectionRanker fits one
// model per weighted profile section (experience, skills, projects) and
// scores a job description against every profile as the weighted
// average of per-section cosine similarities, falling back to a single
// whole-document model when the section corpora are degenerate.
//
// Scores are deterministic: the vocabulary is assigned in sorted term
// order, so identical inputs always produce identical output.
package lexical
