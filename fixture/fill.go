package fixture

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/poissondisc"
)

// Fill records are laid out over a fixed lon/lat box with a fixed seed,
// so repeated runs produce byte-identical fixtures.
const (
	fillMinLon, fillMaxLon = -20.0, 20.0
	fillMinLat, fillMaxLat = 35.0, 55.0
	fillSeed               = 1
)

// FillRecords returns n synthetic records spread over the fill box by
// poisson-disc sampling, for fixtures big enough to exercise upload size
// handling.
func FillRecords(n int) []Record {
	if n <= 0 {
		return nil
	}

	// Spacing chosen to oversample the box. Surplus points are dropped so
	// the count comes out exact.
	area := (fillMaxLon - fillMinLon) * (fillMaxLat - fillMinLat)
	r := math.Sqrt(area/float64(n)) / 3

	rnd := rand.New(rand.NewSource(fillSeed))
	points := poissondisc.Sample(fillMinLon, fillMinLat, fillMaxLon, fillMaxLat, r, 30, rnd)
	if len(points) > n {
		points = points[:n]
	}

	recs := make([]Record, 0, len(points))
	for i, p := range points {
		recs = append(recs, Record{
			Lon:   p.X,
			Lat:   p.Y,
			Name:  fmt.Sprintf("fill-%04d", i+1),
			Value: float64(1000 + i),
		})
	}
	return recs
}
