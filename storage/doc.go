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


// Package storage defines the persistence abstractions for the knowledge base.
//
// The DocumentRepository interface covers CRUD, category lookup, and
// brute-force vector similarity search over the stored documents. Business
// logic depends only on these interfaces; concrete backends live in
// subpackages (currently storage/badger).
//
// Serialization helpers wrap the generated MUS codecs from the core package
// so that backends share a single wire format.
//
// # Usage
//
//	backend, err := badger.OpenBackend("/var/lib/saglikrock/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo := badger.NewDocumentRepository(backend)
//	defer repo.Close()
//
//	hits, err := repo.FindSimilar(ctx, queryVector, 0.0, 10)
package storage
