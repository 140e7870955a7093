/* Survey points, Latitude / Longitude to UTM PENZD conversion */
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	ll2utm "github.com/xyang2013/ll2utm/src"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	var code = run(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if code != exitOK {
		os.Exit(code)
	}
}

/*------------------------------------------------------------------
 *
 * Name:	run
 *
 * Purpose:	Everything main does, minus the exit, so it can be tested.
 *
 * Inputs:	args	- Command line including program name.
 *
 * Returns:	Process exit code.
 *
 *---------------------------------------------------------------*/

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var printMode = flags.BoolP("print", "p", false, "Print the header and converted records to the console instead of writing a file.")
	var debugMode = flags.BoolP("debug", "d", false, "Print each input point and the northing, easting computed for it.")
	var checkMode = flags.BoolP("check", "n", false, "Convert everything but write nothing.  Useful for validating input.")
	var configFileName = flags.StringP("config", "c", "", "YAML job file.  Command line options override it.")
	var precision = flags.IntP("precision", "P", ll2utm.ShortestPrecision, "Decimal places for easting and northing.  -1 for as many as needed.")
	var zone = flags.IntP("zone", "z", 0, "Force UTM zone 1 thru 60.  0 picks the zone from the longitude.")
	var logLevel = flags.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	var quiet = flags.BoolP("quiet", "q", false, "Only log errors.")
	var version = flags.BoolP("version", "v", false, "Print version and exit.")
	var help = flags.BoolP("help", "h", false, "Display help text.")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s - Convert survey points from latitude / longitude to UTM.\n", args[0])
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Usage: %s [options] input [output]\n", args[0])
		fmt.Fprintf(stderr, "\n")
		flags.PrintDefaults()
		usage2(stderr)
	}

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintf(stderr, "%s\n\n", err)
		flags.Usage()

		return exitUsage
	}

	if *help {
		flags.Usage()

		return exitOK
	}

	if *version {
		ll2utm.PrintVersion(stdout)

		return exitOK
	}

	if flags.NArg() > 2 {
		fmt.Fprintf(stderr, "Too many arguments.  Expected input and optional output, got %d.\n\n", flags.NArg())
		flags.Usage()

		return exitUsage
	}

	var cfg = ll2utm.DefaultConfig()

	if *configFileName != "" {
		var loaded, err = ll2utm.LoadJobFile(*configFileName)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)

			return exitUsage
		}

		cfg = loaded
	}

	// Command line beats job file, but only for things actually given.
	if flags.NArg() >= 1 {
		cfg.Input = flags.Arg(0)
	}

	if flags.NArg() == 2 {
		cfg.Output = flags.Arg(1)
	}

	if flags.Changed("precision") {
		cfg.Precision = *precision
	}

	if flags.Changed("zone") {
		cfg.Zone = *zone
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}

	switch {
	case *debugMode:
		cfg.Mode = ll2utm.ModeDebug
	case *checkMode:
		cfg.Mode = ll2utm.ModeCheck
	case *printMode:
		cfg.Mode = ll2utm.ModePrint
	}

	var logger, logErr = ll2utm.NewLogger(stderr, cfg.LogLevel, *quiet)
	if logErr != nil {
		fmt.Fprintf(stderr, "%s\n", logErr)

		return exitUsage
	}

	var job, jobErr = cfg.NewJob(stdin, stdout, logger, time.Now())
	if jobErr != nil {
		logger.Error("invalid settings", "err", jobErr)

		var configErr *ll2utm.ConfigError
		if errors.As(jobErr, &configErr) && configErr.Field == "input" {
			flags.Usage()
		}

		return exitUsage
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var summary, err = ll2utm.Run(ctx, job)
	if err != nil {
		logger.Error("conversion failed", "err", err)

		return exitFailed
	}

	logger.Info("conversion complete",
		"points", summary.PointsRead,
		"records", summary.RecordsWritten,
		"mode", string(cfg.ResolvedMode()),
		"elapsed", summary.Elapsed)

	return exitOK
}

func usage2(w io.Writer) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "where,\n")
	fmt.Fprintf(w, "\tinput is CSV with a header row containing point, longitude, latitude, ahd.\n")
	fmt.Fprintf(w, "\t   Latitude and longitude are in decimal degrees, WGS84.\n")
	fmt.Fprintf(w, "\t   Use - to read standard input.\n")
	fmt.Fprintf(w, "\toutput is where PENZD CSV (point, easting, northing, level, description)\n")
	fmt.Fprintf(w, "\t   is written, without a header.  Use - for standard output.\n")
	fmt.Fprintf(w, "\t   strftime conversions such as %%Y%%m%%d are filled in with the current time.\n")
	fmt.Fprintf(w, "\t   Without output, the records are printed instead.\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Examples:\n")
	fmt.Fprintf(w, "\tll2utm survey.csv penzd.csv\n")
	fmt.Fprintf(w, "\tll2utm --debug survey.csv\n")
	fmt.Fprintf(w, "\tll2utm - - < survey.csv\n")
}
