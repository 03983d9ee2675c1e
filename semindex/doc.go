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

// Package semindex builds and queries the semantic vector index over
// candidate profiles.
//
// The Builder embeds profile full texts in batches through an ai.Embedder,
// retrying transient failures with exponential backoff, and produces an
// immutable core.VectorIndex with L2-normalized rows. The Index holds the
// published snapshot behind an atomic pointer so concurrent readers never
// observe a half-built structure; a rebuild swaps the whole snapshot at
// once.
//
// Search scores every row by Euclidean distance against the normalized
// query vector and converts distance to a similarity in (0, 1] via
// 1/(1+distance). A brute-force scan is deliberate: corpora are resume
// collections measured in hundreds, not millions, and a linear pass over
// in-memory vectors beats index maintenance at that scale.
package semindex
