package ll2utm

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/coordconv"
	"pgregory.net/rapid"
)

var sydney = Conversion{
	Source: SurveyPoint{Point: 1, Longitude: 151.2093, Latitude: -33.8688, AHD: 10.5},
	Grid:   GridCoord{Zone: 56, Hemisphere: coordconv.HemisphereSouth, Easting: 334368.634, Northing: 6250948.345},
	Record: Record{Point: 1, Easting: 334368.634, Northing: 6250948.345, Level: 10.5},
}

func TestWritePENZD(t *testing.T) {
	var buf bytes.Buffer

	var records = []Record{
		{Point: 1, Easting: 334368.634, Northing: 6250948.345, Level: 10.5},
		{Point: 2, Easting: 500000, Northing: 0, Level: -0.25, Description: `fence, "north"`},
	}

	require.NoError(t, WritePENZD(&buf, records, ShortestPrecision))

	assert.Equal(t, "1,334368.634,6250948.345,10.5,\n"+
		"2,500000,0,-0.25,\"fence, \"\"north\"\"\"\n", buf.String())
}

func TestWritePENZD_Precision(t *testing.T) {
	var buf bytes.Buffer

	var records = []Record{{Point: 9, Easting: 334368.6337, Northing: 6250948.3454, Level: 10.123456}}

	require.NoError(t, WritePENZD(&buf, records, 2))

	// Level is never rounded.
	assert.Equal(t, "9,334368.63,6250948.35,10.123456,\n", buf.String())
}

func TestWritePENZD_NoRecords(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePENZD(&buf, nil, ShortestPrecision))
	assert.Empty(t, buf.String())
}

// Point and level must come back exactly as they went in.
func TestWritePENZD_ReadBack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var records = rapid.SliceOf(rapid.Custom(func(t *rapid.T) Record {
			return Record{
				Point:    rapid.Uint16().Draw(t, "point"),
				Easting:  rapid.Float64Range(100000, 900000).Draw(t, "easting"),
				Northing: rapid.Float64Range(0, 10000000).Draw(t, "northing"),
				Level:    rapid.Float64Range(-500, 9000).Draw(t, "level"),
			}
		})).Draw(t, "records")

		var buf bytes.Buffer
		if err := WritePENZD(&buf, records, ShortestPrecision); err != nil {
			t.Fatalf("write: %v", err)
		}

		var rows, err = csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("read back: %v", err)
		}

		assert.Len(t, rows, len(records))

		for i, row := range rows {
			assert.Len(t, row, 5)
			assert.Equal(t, strconv.FormatUint(uint64(records[i].Point), 10), row[0])

			var level, _ = strconv.ParseFloat(row[3], 64)
			assert.Equal(t, records[i].Level, level)

			var easting, _ = strconv.ParseFloat(row[1], 64)
			assert.Equal(t, records[i].Easting, easting)

			assert.Equal(t, "", row[4])
		}
	})
}

func TestCSVSink_File(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "penzd.csv")

	var sink = &CSVSink{Path: path, Precision: 3}
	require.NoError(t, sink.WriteRecords([]string{"point"}, []Conversion{sydney}))

	var data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,334368.634,6250948.345,10.5,\n", string(data))
}

func TestCSVSink_EmptySurveyStillMakesFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "penzd.csv")

	var sink = &CSVSink{Path: path, Precision: ShortestPrecision}
	require.NoError(t, sink.WriteRecords(nil, []Conversion{}))

	var info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCSVSink_Stdout(t *testing.T) {
	var stdout bytes.Buffer

	var sink = &CSVSink{Path: StdoutName, Stdout: &stdout, Precision: 0}
	require.NoError(t, sink.WriteRecords(nil, []Conversion{sydney}))

	assert.Equal(t, "1,334369,6250948,10.5,\n", stdout.String())
}

func TestCSVSink_CannotCreate(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "no", "such", "dir", "penzd.csv")

	var sink = &CSVSink{Path: path, Precision: ShortestPrecision}
	var err = sink.WriteRecords(nil, []Conversion{sydney})

	var openErr *SinkOpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, path, openErr.Path)
}

type brokenWriter struct{}

var errBroken = errors.New("disk on fire")

func (brokenWriter) Write(_ []byte) (int, error) { return 0, errBroken }

func TestCSVSink_WriteFails(t *testing.T) {
	var sink = &CSVSink{Path: StdoutName, Stdout: brokenWriter{}, Precision: ShortestPrecision}
	var err = sink.WriteRecords(nil, []Conversion{sydney})

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, errBroken)
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer

	var sink = &ConsoleSink{W: &buf, Precision: 1}
	require.NoError(t, sink.WriteRecords([]string{"point", "longitude", "latitude", "ahd"}, []Conversion{sydney}))

	assert.Equal(t, "header: point,longitude,latitude,ahd\n"+
		"point=1 easting=334368.6 northing=6250948.3 level=10.5 description=\"\"\n", buf.String())
}

func TestDiagnosticSink(t *testing.T) {
	var buf bytes.Buffer

	var sink = &DiagnosticSink{W: &buf, Precision: 3}
	require.NoError(t, sink.WriteRecords(nil, []Conversion{sydney}))

	assert.Equal(t, "point=1 longitude=151.2093 latitude=-33.8688 ahd=10.5\n"+
		"  (6250948.345, 334368.634) zone 56S\n", buf.String())
}

func TestConsoleSinks_WriteFails(t *testing.T) {
	for _, sink := range []Sink{
		&ConsoleSink{W: brokenWriter{}},
		&DiagnosticSink{W: brokenWriter{}},
	} {
		var err = sink.WriteRecords(nil, []Conversion{sydney})
		assert.ErrorIs(t, err, errBroken)
	}
}

func TestDiscardSink(t *testing.T) {
	assert.NoError(t, DiscardSink{}.WriteRecords(nil, []Conversion{sydney}))
}
