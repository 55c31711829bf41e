// Package digest provides the canonical content hash used across the
// blockchain packages.
package digest

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. The genesis block links to this
// value since it has no predecessor.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// HashLen is the length of any hash produced by this package, the 0x prefix
// plus 64 hex digits.
const HashLen = 66

// Hash returns a unique string for the value. The value is marshaled to JSON
// first so two values with identical content always produce the same hash.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}
