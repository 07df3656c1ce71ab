// internal/domain/delivery/zones.go
package delivery

// Authored delivery zones. Keys are lowercase; lookups normalize input
// the same way. Adding a zone is a data change, not a logic change.
var zoneCoordinates = map[string]Coordinate{
	"centro":            {Lat: -23.5505, Lng: -46.6333},
	"centro histórico":  {Lat: -23.5500, Lng: -46.6330},
	"vila nova":         {Lat: -23.5600, Lng: -46.6400},
	"jardim das flores": {Lat: -23.5700, Lng: -46.6500},
	"bela vista":        {Lat: -23.5550, Lng: -46.6350},
	"santa maria":       {Lat: -23.5800, Lng: -46.6600},
	"nova esperança":    {Lat: -23.5900, Lng: -46.6700},
}

// Zones returns the names of the known delivery zones
func Zones() []string {
	names := make([]string, 0, len(zoneCoordinates))
	for name := range zoneCoordinates {
		names = append(names, name)
	}
	return names
}
