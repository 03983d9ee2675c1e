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


package core

import "errors"

// Domain errors
var (
	// ErrEmptyCorpus indicates there are no profiles to rank or index.
	ErrEmptyCorpus = errors.New("empty corpus: no profiles available")

	// ErrIndexNotFound indicates a search was attempted before any index build completed.
	ErrIndexNotFound = errors.New("vector index not found")

	// ErrEmptyJobDescription indicates a blank job description was supplied for ranking.
	ErrEmptyJobDescription = errors.New("job description cannot be empty")

	// ErrEmptyQuery indicates a blank retrieval query was supplied.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidTopK indicates a negative top-k bound.
	ErrInvalidTopK = errors.New("top_k cannot be negative")

	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrEmptyFilename indicates the profile Filename field is empty.
	ErrEmptyFilename = errors.New("profile filename cannot be empty")

	// ErrEmptyFullText indicates the profile FullText field is empty.
	ErrEmptyFullText = errors.New("profile full text cannot be empty")
)
