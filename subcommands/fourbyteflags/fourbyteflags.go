// all the flags
package fourbyteflags

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/aquachain/fourbyte/common/log"
	"gitlab.com/aquachain/fourbyte/fourbyte"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	InputFlag = &cli.StringFlag{
		Name:      "input",
		Usage:     "Mapping file to read (flat JSON object of selector to signature)",
		Value:     fourbyte.DefaultInput,
		Category:  "TRANSFORM",
		Validator: checkStringFlag,
	}
	OutputFlag = &cli.StringFlag{
		Name:      "output",
		Usage:     "File to write the corrected mapping to (overwritten if it exists)",
		Value:     fourbyte.DefaultOutput,
		Category:  "TRANSFORM",
		Validator: checkStringFlag,
	}
	DupesFlag = &cli.StringFlag{
		Name:  "dupes",
		Usage: "Policy for signatures that recalculate to the same selector (keep, warn, error)",
		Value: string(fourbyte.DupeKeep),
		Action: func(ctx context.Context, cmd *cli.Command, v string) error {
			_, err := fourbyte.ParseDupePolicy(v)
			return err
		},
		Category:  "TRANSFORM",
		Validator: checkStringFlag,
	}
	LogfmtFlag = &cli.BoolFlag{
		Name:  "logfmt",
		Usage: "Emit logs in machine-parseable logfmt instead of the terminal format",
		Action: func(ctx context.Context, cmd *cli.Command, v bool) error {
			if v {
				log.SetRootHandler(log.StreamHandler(os.Stderr, log.LogfmtFormat()))
			}
			return nil
		},
		Category: "LOGGING",
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "Logging verbosity (trace, debug, info, warn, error, crit)",
		Value: "info",
		Action: func(ctx context.Context, cmd *cli.Command, v string) error {
			lvl, err := log.ParseLevel(v)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
		Category:  "LOGGING",
		Validator: checkStringFlag,
	}
)

// TransformFlags are the flags shared by commands that run the transform.
var TransformFlags = []cli.Flag{
	InputFlag,
	OutputFlag,
	DupesFlag,
}

func checkStringFlag(v string) error {
	if v == "" {
		return fmt.Errorf("empty flag value")
	}
	return nil
}
