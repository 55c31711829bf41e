// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date            time.Time       `json:"date"`
	ChainID         uint16          `json:"chain_id"`          // An unique id for this running instance.
	Difficulty      uint            `json:"difficulty"`        // Leading zero hex digits needed to solve the work problem.
	TargetBlockTime time.Duration   `json:"target_block_time"` // The mining duration the difficulty adjustment aims for.
	Tolerance       time.Duration   `json:"tolerance"`         // How far off target a mining run may be before adjusting.
	Balances        map[string]uint `json:"balances"`          // Starting balances for the demo accounts.
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	err = json.Unmarshal(content, &genesis)
	if err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
