package scenario

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex BLAKE2b-256 digest of the JSON encoding of both
// collections. Equal collections always produce equal digests.
func Digest(source, target []int) string {
	if source == nil {
		source = []int{}
	}
	if target == nil {
		target = []int{}
	}
	// Marshalling plain int slices cannot fail.
	b, _ := json.Marshal(struct {
		Source []int `json:"source"`
		Target []int `json:"target"`
	}{source, target})
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
