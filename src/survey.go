package ll2utm

/*------------------------------------------------------------------
 *
 * Purpose:	Survey point records before and after conversion.
 *
 * Description:	Input rows carry point, longitude, latitude and ahd.
 *		Output rows are PENZD: Point, Easting, Northing,
 *		Z (level) and Description.
 *
 *		Point and level are copied through untouched.
 *		Description is reserved and always empty for now.
 *
 *------------------------------------------------------------------*/

// Required input columns, in the order they are reported when missing.
const (
	ColumnPoint     = "point"
	ColumnLongitude = "longitude"
	ColumnLatitude  = "latitude"
	ColumnAHD       = "ahd"
)

var RequiredColumns = []string{ColumnPoint, ColumnLongitude, ColumnLatitude, ColumnAHD}

// SurveyPoint is one input row.  Longitude and latitude are decimal
// degrees on WGS84, AHD is an elevation in meters.
type SurveyPoint struct {
	Point     uint16
	Longitude float64
	Latitude  float64
	AHD       float64
}

// Record is one PENZD output row.
type Record struct {
	Point       uint16
	Easting     float64
	Northing    float64
	Level       float64
	Description string
}

// Conversion keeps a source point together with what it became, so
// diagnostic output can show both.
type Conversion struct {
	Source SurveyPoint
	Grid   GridCoord
	Record Record
}
