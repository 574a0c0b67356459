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


// Package ingest loads the curated knowledge bank and builds the search
// index from it.
//
// LoadBank parses the Turkish-schema JSON bank and fails fast on the first
// invalid entry. The Pipeline then embeds documents in concurrent batches
// and writes them to storage; a failed embedding aborts the build before
// anything is persisted, so a started index is always a complete one.
// Content-derived document ids make repeated builds idempotent.
package ingest
