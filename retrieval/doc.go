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

// Package retrieval implements two-stage candidate retrieval with streamed
// grounded answers.
//
// A query first consults the response cache by fingerprint. On a miss the
// orchestrator ensures a semantic index exists (building it lazily when
// necessary), shortlists candidates by embedding similarity, re-scores the
// shortlist by blending semantic similarity with skill overlap and any
// prior batch ranking, applies the request's filters, and streams a
// generated answer grounded in the surviving candidates.
//
// Responses are delivered over a bounded channel of Chunk values closed by
// the producer. Only cleanly completed responses enter the cache; generator
// failures, error-prefixed output, and empty result messages are never
// cached. An idle watchdog aborts streams that stop producing output.
package retrieval
