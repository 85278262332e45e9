package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-annotation/internal/console"
	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/griffnb/core-annotation/internal/gen"
	"github.com/griffnb/core-annotation/internal/orchestrator"
)

const (
	inputFlag        = "input"
	scopeFlag        = "scope"
	outputFlag       = "output"
	outputTypesFlag  = "outputTypes"
	instanceNameFlag = "instanceName"
	goPackageFlag    = "goPackage"
	parseDepthFlag   = "parseDepth"
	quietFlag        = "quiet"
	debugFlag        = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    inputFlag,
		Aliases: []string{"i"},
		Usage:   "Json or yaml file holding the function inspections to resolve",
	},
	&cli.StringFlag{
		Name:  scopeFlag,
		Usage: "Json or yaml file of scope stubs, name to kind ('module' marks a root importable)",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./",
		Usage:   "Output directory for the generated report",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json",
		Usage:   "Report formats to generate (json,yaml), comma separated",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "report",
		Usage: "Name for the generated report instance",
	},
	&cli.StringSliceFlag{
		Name:  goPackageFlag,
		Usage: "Module root to Go import path mapping, root=import/path, repeatable",
	},
	&cli.IntFlag{
		Name:  parseDepthFlag,
		Value: 0,
		Usage: "Dependency preload depth for the go/packages provider",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug logging",
	},
}

var resolveFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  scopeFlag,
		Usage: "Json or yaml file of scope stubs",
	},
	&cli.StringSliceFlag{
		Name:  goPackageFlag,
		Usage: "Module root to Go import path mapping, root=import/path, repeatable",
	},
	&cli.IntFlag{
		Name:  parseDepthFlag,
		Value: 0,
		Usage: "Dependency preload depth for the go/packages provider",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug logging",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.Bool(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	if ctx.Bool(quietFlag) {
		console.Logger.SetOutput(io.Discard)
	}

	config := &gen.Config{
		InputFile:    ctx.String(inputFlag),
		ScopeFile:    ctx.String(scopeFlag),
		OutputDir:    ctx.String(outputFlag),
		OutputTypes:  strings.Split(ctx.String(outputTypesFlag), ","),
		InstanceName: ctx.String(instanceNameFlag),
		GoPackages:   parseGoPackages(ctx.StringSlice(goPackageFlag)),
		ParseDepth:   ctx.Int(parseDepthFlag),
	}

	if err := gen.New().Build(config); err != nil {
		return err
	}

	console.Logger.Info("generated %s report in %s", config.InstanceName, config.OutputDir)
	return nil
}

func resolveAction(ctx *cli.Context) error {
	if ctx.Bool(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	if ctx.NArg() == 0 {
		return fmt.Errorf("at least one annotation string is required")
	}

	scope, err := gen.ReadScope(ctx.String(scopeFlag))
	if err != nil {
		return err
	}

	orc := orchestrator.New(&orchestrator.Config{
		Providers: gen.BuildProviders(&gen.Config{
			GoPackages: parseGoPackages(ctx.StringSlice(goPackageFlag)),
			ParseDepth: ctx.Int(parseDepthFlag),
		}),
		Debug: console.Logger,
	})

	var firstErr error
	for _, annotationStr := range ctx.Args().Slice() {
		outcome := orc.Resolve(annotationStr, scope)

		data, err := json.Marshal(outcome)
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		if err := outcome.Err(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// A missing dependency is the one hard failure; not-found stays a
	// zero-exit, ordinary result.
	return firstErr
}

// parseGoPackages parses repeated root=import/path mappings.
func parseGoPackages(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}

	mappings := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		mappings[parts[0]] = parts[1]
	}
	return mappings
}

func main() {
	app := cli.NewApp()
	app.Version = version
	app.Usage = "Resolve stringified type annotations back to structured type references."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Resolve an inspection file and generate a resolution report",
			Action:  generateAction,
			Flags:   generateFlags,
		},
		{
			Name:      "resolve",
			Aliases:   []string{"r"},
			Usage:     "Resolve annotation strings given as arguments",
			ArgsUsage: "ANNOTATION [ANNOTATION...]",
			Action:    resolveAction,
			Flags:     resolveFlags,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		var missingErr *domain.MissingDependencyError
		if errors.As(err, &missingErr) {
			console.Logger.Error("missing dependency: %v", missingErr)
		} else {
			console.Logger.Error("%s", err)
		}
		os.Exit(1)
	}
}
