package ll2utm

/*------------------------------------------------------------------
 *
 * Purpose:	Read survey points from CSV.
 *
 * Description:	The first line is a header naming the columns.
 *		point, longitude, latitude and ahd must all be there,
 *		in any order.  Anything else is ignored.
 *
 *		Reading stops at the first bad row.  We don't try to
 *		skip it and carry on, a survey with a hole in it is
 *		worse than no survey.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// StdinName selects standard input instead of a file.
const StdinName = "-"

var errMissingColumn = errors.New("required column missing from header")

// columnIndex holds the position of each required column in a row.
type columnIndex struct {
	point     int
	longitude int
	latitude  int
	ahd       int
}

func indexColumns(header []string) (columnIndex, error) {
	var positions = map[string]int{}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff") // Spreadsheets like to add a BOM.
		}

		name = strings.ToLower(strings.TrimSpace(name))

		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	for _, required := range RequiredColumns {
		if _, ok := positions[required]; !ok {
			return columnIndex{}, &ParseError{Line: 1, Column: required, Err: errMissingColumn}
		}
	}

	return columnIndex{
		point:     positions[ColumnPoint],
		longitude: positions[ColumnLongitude],
		latitude:  positions[ColumnLatitude],
		ahd:       positions[ColumnAHD],
	}, nil
}

/*------------------------------------------------------------------
 *
 * Function:	ReadSurveyPoints
 *
 * Purpose:	Decode every row of a CSV stream.
 *
 * Inputs:	r	- CSV text with header row.
 *
 * Returns:	header	- The header row exactly as read.
 *
 *		points	- One per data row, in the same order.
 *
 *		err	- *ParseError for the first row that can't be used.
 *
 * Description:	An empty stream, without even a header, is not an error.
 *		There is simply nothing to convert.
 *
 *------------------------------------------------------------------*/

func ReadSurveyPoints(r io.Reader) ([]string, []SurveyPoint, error) {
	var reader = csv.NewReader(r)

	var header, err = reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, []SurveyPoint{}, nil
	}

	if err != nil {
		return nil, nil, asParseError(err)
	}

	var cols, colErr = indexColumns(header)
	if colErr != nil {
		return header, nil, colErr
	}

	var points = []SurveyPoint{}

	for {
		var fields, readErr = reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return header, nil, asParseError(readErr)
		}

		var line, _ = reader.FieldPos(0)

		var point, pointErr = decodeRow(fields, cols, line)
		if pointErr != nil {
			return header, nil, pointErr
		}

		points = append(points, point)
	}

	return header, points, nil
}

func decodeRow(fields []string, cols columnIndex, line int) (SurveyPoint, error) {
	var sp SurveyPoint

	var pointStr = strings.TrimSpace(fields[cols.point])

	var point, err = strconv.ParseUint(pointStr, 10, 16)
	if err != nil {
		return SurveyPoint{}, &ParseError{Line: line, Column: ColumnPoint, Value: pointStr, Err: err}
	}

	sp.Point = uint16(point)

	var floats = []struct {
		column string
		index  int
		dest   *float64
	}{
		{ColumnLongitude, cols.longitude, &sp.Longitude},
		{ColumnLatitude, cols.latitude, &sp.Latitude},
		{ColumnAHD, cols.ahd, &sp.AHD},
	}

	for _, f := range floats {
		var s = strings.TrimSpace(fields[f.index])

		var v, floatErr = strconv.ParseFloat(s, 64)
		if floatErr != nil {
			return SurveyPoint{}, &ParseError{Line: line, Column: f.column, Value: s, Err: floatErr}
		}

		*f.dest = v
	}

	return sp, nil
}

// asParseError turns encoding/csv's own errors, such as a wrong number of
// fields or a stray quote, into a ParseError.
func asParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}

	return &ParseError{Err: err}
}

// OpenSource opens the named file for reading, or returns stdin for "-".
// The caller closes what it gets back.
func OpenSource(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinName {
		return io.NopCloser(stdin), nil
	}

	var fp, err = os.Open(path) //nolint:gosec
	if err != nil {
		return nil, &SourceOpenError{Path: path, Err: err}
	}

	return fp, nil
}

// ReadSurveyFile is OpenSource followed by ReadSurveyPoints.
func ReadSurveyFile(path string, stdin io.Reader) ([]string, []SurveyPoint, error) {
	var rc, err = OpenSource(path, stdin)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	var header, points, readErr = ReadSurveyPoints(rc)
	if readErr != nil {
		return header, nil, fmt.Errorf("%s: %w", path, readErr)
	}

	return header, points, nil
}
