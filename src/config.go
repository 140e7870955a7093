package ll2utm

/*------------------------------------------------------------------
 *
 * Purpose:	Settings for a conversion run.
 *
 * Description:	Settings come from an optional YAML job file and the
 *		command line, command line winning.  For example:
 *
 *			input: survey.csv
 *			output: penzd-%Y%m%d.csv
 *			precision: 3
 *			log_level: debug
 *
 *		The output name may contain strftime conversions which
 *		are filled in from the time of the run.
 *
 *------------------------------------------------------------------*/

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v3"
)

// Mode selects the sink.
type Mode string

const (
	ModeAuto  Mode = ""      // File if there's an output name, otherwise print.
	ModeFile  Mode = "file"  // PENZD CSV to the output file.
	ModePrint Mode = "print" // Header and records to the console.
	ModeDebug Mode = "debug" // Raw input and computed pairs to the console.
	ModeCheck Mode = "check" // Convert but keep nothing.
)

var validModes = []Mode{ModeFile, ModePrint, ModeDebug, ModeCheck}

type Config struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Mode      Mode   `yaml:"mode"`
	Precision int    `yaml:"precision"`
	Zone      int    `yaml:"zone"`
	LogLevel  string `yaml:"log_level"`
}

// Maximum number of decimal places.  Beyond this float64 has nothing
// more to say.
const MaxPrecision = 17

func DefaultConfig() Config {
	return Config{
		Precision: ShortestPrecision,
		LogLevel:  "info",
	}
}

/*------------------------------------------------------------------
 *
 * Function:	LoadJobFile
 *
 * Purpose:	Read settings from a YAML job file.
 *
 * Inputs:	path	- File name.
 *
 * Returns:	Defaults overlaid with whatever the file sets.
 *		Unknown keys are an error, they are almost always typos.
 *
 *------------------------------------------------------------------*/

func LoadJobFile(path string) (Config, error) {
	var cfg = DefaultConfig()

	var data, err = os.ReadFile(path) //nolint:gosec
	if err != nil {
		return cfg, &ConfigError{Field: "config", Reason: err.Error()}
	}

	var decoder = yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, &ConfigError{Field: "config", Reason: fmt.Sprintf("%s: %s", path, err)}
	}

	return cfg, nil
}

// ResolvedMode works out the sink when none was asked for.
func (c Config) ResolvedMode() Mode {
	if c.Mode != ModeAuto {
		return c.Mode
	}

	if c.Output != "" {
		return ModeFile
	}

	return ModePrint
}

// Validate reports the first problem found, as a *ConfigError.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return &ConfigError{Field: "input", Reason: "missing input file name"}
	}

	var mode = c.ResolvedMode()

	var known = false
	for _, m := range validModes {
		if mode == m {
			known = true
		}
	}

	if !known {
		return &ConfigError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q, must be one of file, print, debug, check", mode)}
	}

	if mode == ModeFile && strings.TrimSpace(c.Output) == "" {
		return &ConfigError{Field: "output", Reason: "missing output file name"}
	}

	if mode == ModeFile && c.Output == c.Input && c.Input != StdinName {
		return &ConfigError{Field: "output", Reason: "output would overwrite the input file"}
	}

	if c.Precision < ShortestPrecision || c.Precision > MaxPrecision {
		return &ConfigError{Field: "precision", Reason: fmt.Sprintf("must be -1 thru %d, got %d", MaxPrecision, c.Precision)}
	}

	if c.Zone < 0 || c.Zone > MaxUTMZone {
		return &ConfigError{Field: "zone", Reason: fmt.Sprintf("must be 0 (automatic) or 1 thru %d, got %d", MaxUTMZone, c.Zone)}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &ConfigError{Field: "log-level", Reason: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}

	return nil
}

// ExpandOutputPath fills in strftime conversions such as %Y%m%d.
// "-" is left alone.
func ExpandOutputPath(path string, now time.Time) (string, error) {
	if path == StdoutName || !strings.Contains(path, "%") {
		return path, nil
	}

	var expanded, err = strftime.Format(path, now)
	if err != nil {
		return "", &ConfigError{Field: "output", Reason: fmt.Sprintf("bad time format in %q: %s", path, err)}
	}

	return expanded, nil
}

// NewSink builds the sink for the configured mode.  Output must already
// be expanded.
func (c Config) NewSink(stdout io.Writer) Sink {
	switch c.ResolvedMode() {
	case ModeFile:
		return &CSVSink{Path: c.Output, Stdout: stdout, Precision: c.Precision}
	case ModeDebug:
		return &DiagnosticSink{W: stdout, Precision: c.Precision}
	case ModeCheck:
		return DiscardSink{}
	default:
		return &ConsoleSink{W: stdout, Precision: c.Precision}
	}
}

// NewJob validates the settings and puts a runnable job together.
func (c Config) NewJob(stdin io.Reader, stdout io.Writer, logger *log.Logger, now time.Time) (Job, error) {
	if err := c.Validate(); err != nil {
		return Job{}, err
	}

	var output, err = ExpandOutputPath(c.Output, now)
	if err != nil {
		return Job{}, err
	}

	c.Output = output

	var projector, projErr = NewUTMProjector(c.Zone)
	if projErr != nil {
		return Job{}, projErr
	}

	return Job{
		Input:     c.Input,
		Stdin:     stdin,
		Projector: projector,
		Sink:      c.NewSink(stdout),
		Logger:    logger,
	}, nil
}
