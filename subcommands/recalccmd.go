package subcommands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"gitlab.com/aquachain/fourbyte/fourbyte"
	"gitlab.com/aquachain/fourbyte/subcommands/fourbyteflags"
)

var recalcCommand = &cli.Command{
	Action:    recalc,
	Name:      "recalc",
	Usage:     "Recalculate the 4-byte selectors of a signature mapping",
	ArgsUsage: "",
	Flags:     fourbyteflags.TransformFlags,
	Category:  "TRANSFORM COMMANDS",
	Description: `
The recalc command reads a JSON mapping of selector to function signature,
recomputes each entry's canonical selector (legacy Keccak-256 of the
signature, first 4 bytes), and writes the corrected mapping. The selectors
found in the input are discarded, only the signatures matter.

With no flags it behaves like the historical script: 4byte.json in, and
new4byte.json out, in the current directory.`,
}

// recalc is the recalc command.
func recalc(ctx context.Context, cmd *cli.Command) error {
	dupes, err := fourbyte.ParseDupePolicy(cmd.String(fourbyteflags.DupesFlag.Name))
	if err != nil {
		return err
	}
	cfg := fourbyte.Config{
		Input:  cmd.String(fourbyteflags.InputFlag.Name),
		Output: cmd.String(fourbyteflags.OutputFlag.Name),
		Dupes:  dupes,
	}
	n, err := fourbyte.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully recalculated %d 4-byte selectors and saved the result to %s.\n", n, cfg.Output)
	return nil
}
