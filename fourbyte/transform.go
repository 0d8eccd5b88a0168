package fourbyte

import (
	"fmt"

	"gitlab.com/aquachain/fourbyte/common/log"
)

// Default file names, matching the working-directory convention the tool
// inherited: read 4byte.json, write new4byte.json.
const (
	DefaultInput  = "4byte.json"
	DefaultOutput = "new4byte.json"
)

// DupePolicy decides what happens when two signatures recalculate to the
// same selector.
type DupePolicy string

const (
	DupeKeep  DupePolicy = "keep"  // emit both entries, like the flat file format allows
	DupeWarn  DupePolicy = "warn"  // emit both, log each collision
	DupeError DupePolicy = "error" // abort before writing any output
)

// ParseDupePolicy validates a policy name from a flag value.
func ParseDupePolicy(s string) (DupePolicy, error) {
	switch p := DupePolicy(s); p {
	case DupeKeep, DupeWarn, DupeError:
		return p, nil
	default:
		return DupeKeep, fmt.Errorf("invalid dupes policy: %q, try one of %q", s,
			[]DupePolicy{DupeKeep, DupeWarn, DupeError})
	}
}

// Config holds the paths and policy of one transform run.
type Config struct {
	Input  string
	Output string
	Dupes  DupePolicy
}

// DefaultConfig returns the configuration matching a bare invocation in the
// working directory.
func DefaultConfig() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Dupes:  DupeKeep,
	}
}

// Run performs one whole transform: load the input mapping, recalculate
// every selector, write the corrected mapping. It returns the number of
// entries written. All-or-nothing: the output file is not touched until
// every entry has been recalculated.
func Run(cfg Config) (int, error) {
	m, err := Load(cfg.Input)
	if err != nil {
		return 0, err
	}
	log.Debug("loaded selector mapping", "input", cfg.Input, "entries", len(m))
	out, err := m.Recalculate(cfg.Dupes)
	if err != nil {
		return 0, err
	}
	if err := out.WriteFile(cfg.Output); err != nil {
		return 0, err
	}
	log.Debug("recalculated selectors", "entries", len(out), "output", cfg.Output)
	return len(out), nil
}
