package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/alihaydarkir/saglikrock/core"
)

// Key prefixes for different data types
const (
	documentPrefix         = "medrec"
	documentCategoryPrefix = "medrecc"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
func makeDocumentCategoryKey(category string, id core.ID) []byte {
	prefix := documentCategoryPrefix + ":" + category + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	buf := make([]byte, prefixSize+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialCategoryKey generates a partial key for category scans.
// Format: prefix:category:
func makePartialCategoryKey(category string) []byte {
	return []byte(documentCategoryPrefix + ":" + category + ":")
}
