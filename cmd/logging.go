package cmd

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// setupLogging applies -v/-vv to every module, then any module=level
// overrides given with --log-level.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	for _, arg := range ctx.GlobalStringSlice("log-level") {
		module, level, err := parseModuleLevel(arg)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		log.SetModuleLevel(module, level)
	}
	return nil
}

// parseModuleLevel splits "renderer=debug" into its module and level.
func parseModuleLevel(arg string) (string, log.Level, error) {
	module, name, ok := strings.Cut(arg, "=")
	if !ok || module == "" {
		return "", log.Notice, fmt.Errorf("invalid log level %q, expected module=level", arg)
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return "", log.Notice, fmt.Errorf("invalid log level %q: %w", arg, err)
	}
	return module, level, nil
}
