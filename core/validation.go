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


package core

import "fmt"

// DefaultReliability is assigned to bank documents that carry no
// reliability weight of their own.
const DefaultReliability = 0.8

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Category must not be empty
//   - Reliability must lie within [0,1]
//   - Urgency must be a valid enum value
//
// NOT validated (populated later):
//   - Vector (empty until the ingestion pipeline embeds the document)
//   - Id (0 is valid before ingestion assigns a content hash)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if doc.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyCategory)
	}

	if doc.Reliability < 0 || doc.Reliability > 1 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidDocument, ErrInvalidReliability, doc.Reliability)
	}

	if err := ValidateUrgency(doc.Urgency); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateUrgency validates that an Urgency has a valid value.
func ValidateUrgency(u Urgency) error {
	if u != UrgencyNormal && u != UrgencyHigh && u != UrgencyCritical {
		return fmt.Errorf("%w: value %d", ErrInvalidUrgency, u)
	}
	return nil
}
