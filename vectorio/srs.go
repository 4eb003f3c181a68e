package vectorio

import (
	"errors"
	"fmt"
)

var ErrUnknownSRID = errors.New("unknown srid")

// Well-known text for the spatial references the writers can emit. The
// AUTHORITY nodes matter: MapFlow resolves a dataset SRID by reading them
// out of the .prj component.
var srsWKT = map[int]string{
	4326: `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4326"]]`,
}

// WKT returns the OGC well-known text for an EPSG code.
func WKT(srid int) (string, error) {
	wkt, ok := srsWKT[srid]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownSRID, srid)
	}
	return wkt, nil
}
