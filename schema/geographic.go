package schema

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// GeoJSON follows the mongodb geospatial format: coordinates are
// ordered longitude first.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewPoint(loc Location) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

func (g GeoJSON) ToLocation() Location {
	if len(g.Coordinates) < 2 {
		return Location{}
	}
	return Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}
