package ll2utm

/*------------------------------------------------------------------
 *
 * Purpose:	Read, convert, write.  One pass, all or nothing.
 *
 * Description:	Everything is read into memory first, then converted,
 *		then handed to the sink in one go.  The first error of
 *		any kind stops the run and nothing more is written.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Convert turns one survey point into its PENZD record.
func Convert(sp SurveyPoint, p Projector) (Conversion, error) {
	var grid, err = p.Project(sp.Latitude, sp.Longitude)
	if err != nil {
		return Conversion{}, &TransformError{Point: sp.Point, Latitude: sp.Latitude, Longitude: sp.Longitude, Err: err}
	}

	return Conversion{
		Source: sp,
		Grid:   grid,
		Record: Record{
			Point:       sp.Point,
			Easting:     grid.Easting,
			Northing:    grid.Northing,
			Level:       sp.AHD,
			Description: "",
		},
	}, nil
}

// ConvertAll converts every point, keeping the order.  It gives up at the
// first point that can't be converted.
func ConvertAll(points []SurveyPoint, p Projector) ([]Conversion, error) {
	var conversions = make([]Conversion, 0, len(points))

	for _, sp := range points {
		var c, err = Convert(sp, p)
		if err != nil {
			return nil, err
		}

		conversions = append(conversions, c)
	}

	return conversions, nil
}

// Job describes one run.
type Job struct {
	Input     string    // File name, or "-" for Stdin.
	Stdin     io.Reader // Used when Input is "-".
	Projector Projector
	Sink      Sink
	Logger    *log.Logger // nil for silence.
}

// Summary reports what a successful run did.
type Summary struct {
	PointsRead     int
	RecordsWritten int
	Elapsed        time.Duration
}

// Run carries out the job.  ctx is only checked between stages, a stage
// already under way is never interrupted.
func Run(ctx context.Context, job Job) (Summary, error) {
	var logger = job.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var start = time.Now()

	logger.Debug("reading survey points", "input", job.Input)

	var header, points, err = ReadSurveyFile(job.Input, job.Stdin)
	if err != nil {
		return Summary{}, err
	}

	logger.Debug("read survey points", "count", len(points), "header", header)

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var conversions, convErr = ConvertAll(points, job.Projector)
	if convErr != nil {
		return Summary{}, convErr
	}

	logger.Debug("converted survey points", "count", len(conversions))

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	if err := job.Sink.WriteRecords(header, conversions); err != nil {
		return Summary{}, err
	}

	var summary = Summary{
		PointsRead:     len(points),
		RecordsWritten: len(conversions),
		Elapsed:        time.Since(start),
	}

	logger.Debug("wrote records", "count", summary.RecordsWritten)

	return summary, nil
}
