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


// Package answer turns ranked search results into final Turkish Markdown
// answers.
//
// The Orchestrator owns the question lifecycle: it runs the search, picks an
// acceptance threshold from the question type (dosage questions tolerate
// lower scores than general ones, chunked searches lower than plain ones),
// filters the hits, and renders either a protocol answer or a suggestions
// text. Responses are cached by normalized question, and the orchestrator
// keeps rolling metrics over recent queries.
package answer
