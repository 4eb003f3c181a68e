// Package fixture generates the small geodata fixtures the MapFlow test
// suites upload.
package fixture

// Record is one fixture point: position, display name and a numeric
// payload.
type Record struct {
	Lon   float64
	Lat   float64
	Name  string
	Value float64
}

// Records returns the canonical fixture content: three well-known cities
// with stable attribute values.
func Records() []Record {
	return []Record{
		{Lon: -74.006, Lat: 40.7128, Name: "New York", Value: 100},
		{Lon: -0.1276, Lat: 51.5074, Name: "London", Value: 200},
		{Lon: 139.6917, Lat: 35.6895, Name: "Tokyo", Value: 300},
	}
}
