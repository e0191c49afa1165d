package entity

// Location is a geographic coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Store represents a physical store where orders are picked up.
type Store struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	WorkingHours string  `json:"working_hours"`
	Rating       float64 `json:"rating,omitempty"`

	// DistanceKm is filled in by nearby queries relative to the requested
	// origin; zero otherwise.
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// Location returns the store's coordinates.
func (s Store) Location() Location {
	return Location{Latitude: s.Latitude, Longitude: s.Longitude}
}
