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


package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alihaydarkir/saglikrock/core"
)

const (
	defaultReliability = 0.8
	defaultSubcategory = "genel"
	defaultSource      = "bilinmiyor"
)

// bankEntry mirrors one record of the Turkish knowledge bank file.
type bankEntry struct {
	ID          string            `json:"id"`
	Content     string            `json:"icerik"`
	Category    string            `json:"kategori"`
	Subcategory string            `json:"alt_kategori"`
	Reliability *float64          `json:"guvenilirlik"`
	Urgency     string            `json:"acillik_seviyesi"`
	Metadata    map[string]string `json:"metadata"`
}

// LoadBank reads and validates a knowledge bank file. The bank is a JSON
// array of entries with Turkish field names; any unreadable file, malformed
// JSON, or invalid entry aborts the whole load.
func LoadBank(path string) ([]*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank file: %w", err)
	}

	var entries []bankEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBankMalformed, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBankEmpty, path)
	}

	docs := make([]*core.Document, len(entries))
	for i, entry := range entries {
		reliability := defaultReliability
		if entry.Reliability != nil {
			reliability = *entry.Reliability
		}

		subcategory := entry.Subcategory
		if subcategory == "" {
			subcategory = defaultSubcategory
		}
		source := entry.Metadata["kaynak"]
		if source == "" {
			source = defaultSource
		}

		doc := &core.Document{
			SourceID:    entry.ID,
			Content:     entry.Content,
			Category:    entry.Category,
			Subcategory: subcategory,
			Reliability: reliability,
			Urgency:     core.ParseUrgency(entry.Urgency),
			Source:      source,
		}
		if err := core.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("bank entry %d: %w", i, err)
		}
		docs[i] = doc
	}

	return docs, nil
}
