package ll2utm

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// GridCoord is a position on the UTM grid.  Zone and Hemisphere are only
// used for display, they never reach the output record.
type GridCoord struct {
	Zone       int
	Hemisphere coordconv.Hemisphere
	Easting    float64
	Northing   float64
}

// ZoneString gives the zone designation, e.g. "56S" for zone 56 in the
// southern hemisphere.
func (g GridCoord) ZoneString() string {
	return fmt.Sprintf("%d%c", g.Zone, HemisphereToRune(g.Hemisphere))
}

// Projector maps latitude and longitude, in decimal degrees, to the grid.
// Implementations must be pure: the same input always gives the same output.
type Projector interface {
	Project(lat, lon float64) (GridCoord, error)
}

// UTMProjector projects onto UTM with the WGS84 ellipsoid.
// Zone 0 lets the library pick the zone from the longitude.
type UTMProjector struct {
	Zone int
}

const MaxUTMZone = 60

// NewUTMProjector returns a projector forcing the given zone, or picking
// it automatically when zone is 0.
func NewUTMProjector(zone int) (*UTMProjector, error) {
	if zone < 0 || zone > MaxUTMZone {
		return nil, &ConfigError{Field: "zone", Reason: fmt.Sprintf("must be 0 (automatic) or 1 thru %d, got %d", MaxUTMZone, zone)}
	}

	return &UTMProjector{Zone: zone}, nil
}

func D2R(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func (p *UTMProjector) Project(lat, lon float64) (GridCoord, error) {
	var latlng = s2.LatLng{
		Lat: s1.Angle(D2R(lat)),
		Lng: s1.Angle(D2R(lon)),
	}

	var utmCoord, err = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, p.Zone)
	if err != nil {
		return GridCoord{}, err
	}

	return GridCoord{
		Zone:       utmCoord.Zone,
		Hemisphere: utmCoord.Hemisphere,
		Easting:    utmCoord.Easting,
		Northing:   utmCoord.Northing,
	}, nil
}

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}
