package checksum

import (
	"crypto/sha256"
	"fmt"
)

// ArtifactKey derives the object-store key for a product's review artifact.
// Formula: hex(SHA-256(title)) + ".json". The same title always maps to the
// same key, so re-scrapes overwrite instead of accumulating objects.
func ArtifactKey(title string) string {
	hash := sha256.Sum256([]byte(title))
	return fmt.Sprintf("%x.json", hash)
}
