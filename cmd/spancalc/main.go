// spancalc evaluates step based operations (span, shift, expand, ratio, contains) on a range literal of one of the
// supported domains and prints the result to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/configuration"
	"github.com/iotaledger/hive.go/steprange/logger"
)

const envPrefix = "SPANCALC"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// run parses the given arguments, evaluates the requested operation and writes the result to output.
func run(args []string, output io.Writer) error {
	params := &parameters{}
	loggerCfg := logger.DefaultCfg

	config := configuration.New()
	flagset := configuration.NewUnsortedFlagSet("spancalc", flag.ContinueOnError)
	configFile := flagset.StringP("config", "c", "", "the path to a JSON or YAML config file")
	config.BindParameters(flagset, "", params)
	config.BindParameters(flagset, "logger", &loggerCfg)

	flagset.Usage = func() { printUsage(flagset) }
	if err := flagset.Parse(args); err != nil {
		return err
	}

	if err := loadConfiguration(config, flagset, *configFile); err != nil {
		return err
	}
	config.UpdateBoundParameters()

	log, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer log.Sync()

	log.Debugw("evaluating", "domain", params.Domain, "range", params.Range, "op", params.Op)

	result, err := evaluate(params)
	if err != nil {
		log.Errorw("evaluation failed", "domain", params.Domain, "range", params.Range, "op", params.Op, "err", err)

		return err
	}

	log.Debugw("evaluated", "op", params.Op, "result", result)

	_, err = fmt.Fprintln(output, result)

	return err
}

// loadConfiguration merges the config file, the environment variables and the command line flags (in ascending
// priority).
func loadConfiguration(config *configuration.Configuration, flagset *flag.FlagSet, configFile string) error {
	if configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return ierrors.Wrapf(err, "loading config file failed")
		}
	}

	// the flags provide the default values, env vars are only loaded for keys that already exist
	if err := config.LoadFlagSet(flagset); err != nil {
		return err
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return err
	}

	// load the flags again to overwrite env vars that were also set via command line
	return config.LoadFlagSet(flagset)
}

func printUsage(flagset *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage of spancalc:
  spancalc --domain=<domain> --range=<range> [--op=<op>] [options]

Examples:
  spancalc --range="[10, 20]"
  spancalc --domain=businessDays --range="[2024-03-01, 2024-03-31]" --holidays=2024-03-29
  spancalc --domain=time --granularity=hour --range="[2024-03-01T10:30:00Z, 2024-03-01T12:15:00Z]"
  spancalc --range="[10, 20]" --op=expand --left=2 --right=3

Options:
`)
	flagset.PrintDefaults()
}
