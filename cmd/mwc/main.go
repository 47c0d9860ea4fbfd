package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"mwc/config"
	"mwc/convert"
	"mwc/decode"
	"mwc/misc"
	"mwc/state"
)

const convertHelp = `%s
SOURCE:
    path to document(s) to process, following forms are accepted:
        path to a file: "[path_to_file]file.md"
        path to a directory: "[path_to_directory]directory" - all documents under directory, symbolic links are not followed
        path to a file inside archive: "[path_to_archive]archive.zip[path_in_archive]/file.csv"
        path inside archive: "[path_to_archive]archive.zip[path_in_archive]" - all documents under archive path

    Documents are recognized by extension (%s).
    Archives inside archives are not processed.

DESTINATION:
    always a path, output file name(s) and extension are derived from source and --to
    if absent - current working directory
`

const dumpConfigHelp = `%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Active configuration is a composition of default values and values from the
configuration file. Use --default to see configuration embedded into the program.
`

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:         "convert",
		Usage:        "Assembles document(s) into specified format",
		OnUsageError: usageErrorHandler,
		Action:       convert.Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Value: config.OutputFmtXhtml.String(),
				Usage: "output `TYPE` (one of: " + strings.Join(config.OutputFmtNames(), ", ") + ")"},
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "put all results directly into destination"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing results"},
			&cli.StringFlag{Name: "force-zip-cp",
				Usage: "use `ENCODING` for all non UTF-8 file names in archives (IANA character set name)"},
		},
		ArgsUsage:          "SOURCE [DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(convertHelp, cli.CommandHelpTemplate, strings.Join(decode.Extensions, " ")),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Writes default or active configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError:       usageErrorHandler,
		Action:             outputConfiguration,
		ArgsUsage:          "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(dumpConfigHelp, cli.CommandHelpTemplate),
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "assembles text, markdown, html and csv documents into xhtml, csv or event traces",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and collect logs, configuration, sources and traces into report archive"},
		},
		Commands: []*cli.Command{convertCommand(), dumpConfigCommand()},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit skips deferred calls, this must stay the only one
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
