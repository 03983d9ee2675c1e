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


// Package skills maps free text to a fixed skill vocabulary.
//
// A Vocabulary is built once from a curated entry list plus an alias
// table for punctuated forms ("c++" -> "cpp") and validated at load
// time. Extraction normalizes text and matches multi-word entries by
// substring and single-word entries by word boundary, so "java" never
// matches inside "javascript". The extracted sets feed every scorer in
// the engine.
package skills
