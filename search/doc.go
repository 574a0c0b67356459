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


// Package search implements the multi-variant retrieval engine.
//
// A question is first analyzed (category, features, complexity), then
// rewritten into several search variants: long questions are chunked into
// weighted fragments, short ones get three expansion strategies next to the
// original. Each variant is embedded and searched concurrently on a worker
// pool; per-variant hits are scored with a multiplicative bonus table (exact
// word overlap, category agreement, source reliability, answer length,
// urgency, shared clinical terms) and merged by document, rewarding documents
// that several variants agree on.
//
// A failing variant is contained: it logs and contributes zero hits. The
// final ranking is deterministic for a fixed collection and embedder.
package search
