package ll2utm

/*------------------------------------------------------------------
 *
 * Purpose:	Send converted records somewhere.
 *
 * Description:	There are four places the results can go:
 *
 *		CSVSink		- PENZD CSV, no header, to a file or stdout.
 *
 *		ConsoleSink	- Human readable listing with the input header.
 *
 *		DiagnosticSink	- Each input point next to the northing and
 *				  easting computed for it.
 *
 *		DiscardSink	- Nowhere.  Just check that everything converts.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// StdoutName selects standard output instead of a file.
const StdoutName = "-"

// Sink receives the whole converted survey at once.
type Sink interface {
	WriteRecords(header []string, conversions []Conversion) error
}

// ShortestPrecision formats floats with the fewest digits that still
// read back as the same value.
const ShortestPrecision = -1

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// WritePENZD writes records as CSV without a header.  Nothing is
// guaranteed to have reached w until it returns nil.
// precision only applies to easting and northing.  Level is copied from
// the input and is never rounded.
func WritePENZD(w io.Writer, records []Record, precision int) error {
	var cw = csv.NewWriter(w)

	for _, r := range records {
		var err = cw.Write([]string{
			strconv.FormatUint(uint64(r.Point), 10),
			formatFloat(r.Easting, precision),
			formatFloat(r.Northing, precision),
			formatFloat(r.Level, ShortestPrecision),
			r.Description,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// CSVSink writes PENZD CSV to Path, or to Stdout when Path is "-".
// The file is only created once there is something to write, so a run
// that fails earlier leaves no file behind.
type CSVSink struct {
	Path      string
	Stdout    io.Writer
	Precision int
}

func (s *CSVSink) WriteRecords(_ []string, conversions []Conversion) error {
	var records = make([]Record, len(conversions))
	for i, c := range conversions {
		records[i] = c.Record
	}

	if s.Path == StdoutName {
		if err := WritePENZD(s.Stdout, records, s.Precision); err != nil {
			return &WriteError{Path: "standard output", Err: err}
		}

		return nil
	}

	var fp, err = os.Create(s.Path) //nolint:gosec
	if err != nil {
		return &SinkOpenError{Path: s.Path, Err: err}
	}

	if err := WritePENZD(fp, records, s.Precision); err != nil {
		fp.Close()

		return &WriteError{Path: s.Path, Err: err}
	}

	// Make sure it's really on the disk before we claim success.
	if err := fp.Sync(); err != nil {
		fp.Close()

		return &WriteError{Path: s.Path, Err: err}
	}

	if err := fp.Close(); err != nil {
		return &WriteError{Path: s.Path, Err: err}
	}

	return nil
}

// ConsoleSink lists the input header and then every record.
type ConsoleSink struct {
	W         io.Writer
	Precision int
}

func (s *ConsoleSink) WriteRecords(header []string, conversions []Conversion) error {
	var b strings.Builder

	fmt.Fprintf(&b, "header: %s\n", strings.Join(header, ","))

	for _, c := range conversions {
		var r = c.Record
		fmt.Fprintf(&b, "point=%d easting=%s northing=%s level=%s description=%q\n",
			r.Point,
			formatFloat(r.Easting, s.Precision),
			formatFloat(r.Northing, s.Precision),
			formatFloat(r.Level, ShortestPrecision),
			r.Description)
	}

	if _, err := io.WriteString(s.W, b.String()); err != nil {
		return &WriteError{Path: "console", Err: err}
	}

	return nil
}

// DiagnosticSink shows each raw input point followed by the
// northing / easting pair it produced.
type DiagnosticSink struct {
	W         io.Writer
	Precision int
}

func (s *DiagnosticSink) WriteRecords(_ []string, conversions []Conversion) error {
	var b strings.Builder

	for _, c := range conversions {
		var sp = c.Source
		fmt.Fprintf(&b, "point=%d longitude=%s latitude=%s ahd=%s\n",
			sp.Point,
			formatFloat(sp.Longitude, ShortestPrecision),
			formatFloat(sp.Latitude, ShortestPrecision),
			formatFloat(sp.AHD, ShortestPrecision))
		fmt.Fprintf(&b, "  (%s, %s) zone %s\n",
			formatFloat(c.Grid.Northing, s.Precision),
			formatFloat(c.Grid.Easting, s.Precision),
			c.Grid.ZoneString())
	}

	if _, err := io.WriteString(s.W, b.String()); err != nil {
		return &WriteError{Path: "console", Err: err}
	}

	return nil
}

// DiscardSink throws everything away.
type DiscardSink struct{}

func (DiscardSink) WriteRecords(_ []string, _ []Conversion) error {
	return nil
}
