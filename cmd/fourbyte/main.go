// fourbyte is a batch tool that recalculates canonical 4-byte method
// selectors for a function signature mapping file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"gitlab.com/aquachain/fourbyte/subcommands"
	"gitlab.com/aquachain/fourbyte/subcommands/fourbyteflags"
)

const clientIdentifier = "fourbyte"

var (
	// Git SHA1 commit hash and timestamp of the release (set via linker flags)
	gitCommit, buildDate, gitTag string
)

var errMainQuit = errors.New("run success")

func init() {
	subcommands.SetBuildInfo(gitCommit, buildDate, gitTag, clientIdentifier)
}

func main() {
	app := &cli.Command{
		Name:    clientIdentifier,
		Usage:   "recalculate canonical 4-byte method selectors for a signature mapping",
		Version: gitTag,
		Flags: []cli.Flag{
			fourbyteflags.LogLevelFlag,
			fourbyteflags.LogfmtFlag,
		},
		// bare invocation behaves like the historical script
		DefaultCommand: "recalc",
		Commands:       subcommands.Subcommands(),
	}

	ctx, cancelcause := context.WithCancelCause(context.Background())
	defer cancelcause(errMainQuit)

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)
		sig := <-ch
		cancelcause(fmt.Errorf("received signal %s", sig))
	}()

	err := app.Run(ctx, os.Args)
	if err == nil {
		if cause := context.Cause(ctx); cause != nil && cause != errMainQuit && cause != context.Canceled {
			err = cause
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: running %s failed with error %+v\n", app.Name, err)
		os.Exit(1)
	}
}
