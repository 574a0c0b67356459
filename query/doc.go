// Copyright 2026 Sağlık ROCK Authors
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


// Package query analyzes and rewrites Turkish medical questions before they
// reach the vector store.
//
// Three collaborating components work from a shared static lexicon:
//
//   - Expander generates progressively richer variants of a question
//     (basic synonym expansion, fuzzy/question-type expansion, and deep
//     category/semantic expansion).
//   - Detector scores the question against the category taxonomy and
//     extracts feature flags (dose, procedure, pediatric, emergency...).
//   - Chunker splits long compound questions into independently
//     searchable fragments.
//
// All three are pure functions of the lexicon and the input: no state, no
// I/O, deterministic output for the same question.
package query
