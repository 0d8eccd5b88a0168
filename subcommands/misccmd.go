package subcommands

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"gitlab.com/aquachain/fourbyte/fourbyte"
	"gitlab.com/aquachain/fourbyte/subcommands/buildinfo"
)

var hashCommand = &cli.Command{
	Action:    hash,
	Name:      "hash",
	Usage:     "Print the canonical selector of each signature argument",
	ArgsUsage: "<signature> [signature...]",
	Category:  "MISCELLANEOUS COMMANDS",
	Description: `
The hash command prints the canonical 4-byte selector for one or more
function signatures, for example:

    fourbyte hash "transfer(address,uint256)"

The signature must be in canonical form (no parameter names, no spaces).`,
}

func hash(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("hash requires at least one signature argument")
	}
	for _, sig := range args {
		fmt.Printf("%s: 0x%s\n", sig, fourbyte.MethodSig(sig))
	}
	return nil
}

var versionCommand = &cli.Command{
	Action:   version,
	Name:     "version",
	Usage:    "Print version numbers",
	Category: "MISCELLANEOUS COMMANDS",
	Description: `
The output of this command is supposed to be machine-friendly.`,
}

func version(ctx context.Context, cmd *cli.Command) error {
	bi := buildinfo.GetBuildInfo()
	fmt.Println(bi.ClientIdentifier)
	fmt.Println("Version:", bi.GitTag)
	if bi.GitCommit != "" {
		fmt.Println("Git Commit:", bi.GitCommit)
	}
	fmt.Println("Build Date:", bi.BuildDate)
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	return nil
}
