package subcommands

import (
	"github.com/urfave/cli/v3"

	"gitlab.com/aquachain/fourbyte/subcommands/buildinfo"
)

// SetBuildInfo also calls 'buildinfo.SetBuildInfo'
func SetBuildInfo(commit, date, tag string, clientIdentifier0 string) {
	buildinfo.SetBuildInfo(buildinfo.BuildInfo{
		GitCommit:        commit,
		BuildDate:        date,
		GitTag:           tag,
		BuildTags:        "",
		ClientIdentifier: clientIdentifier0,
	})
}

func Subcommands() []*cli.Command {
	return []*cli.Command{
		// See recalccmd.go:
		recalcCommand,
		// See misccmd.go:
		hashCommand,
		versionCommand,
	}
}

func SubcommandByName(s string) *cli.Command {
	for _, c := range Subcommands() {
		if c.Name == s {
			return c
		}
	}
	return nil
}
