// internal/domain/delivery/calculator.go
package delivery

import (
	"math"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
)

// Calculator computes delivery fees from the store origin to a
// customer's neighborhood
type Calculator struct {
	origin       Coordinate
	baseFee      int64
	perKmFee     int64
	baseRadiusKM float64
	zones        map[string]Coordinate
}

// Quote is the result of a fee calculation. Fee is in centavos;
// DistanceKM is zero when the neighborhood is not a known zone.
type Quote struct {
	Neighborhood string  `json:"neighborhood"`
	DistanceKM   float64 `json:"distance_km"`
	Fee          int64   `json:"fee"`
	ZoneKnown    bool    `json:"zone_known"`
}

// NewCalculator creates a calculator over the authored zone table
func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		origin:       Coordinate{Lat: cfg.Store.OriginLat, Lng: cfg.Store.OriginLng},
		baseFee:      cfg.Delivery.BaseFee,
		perKmFee:     cfg.Delivery.PerKmFee,
		baseRadiusKM: cfg.Delivery.BaseRadiusKM,
		zones:        zoneCoordinates,
	}
}

// Origin returns the configured store coordinate
func (c *Calculator) Origin() Coordinate {
	return c.origin
}

// Quote resolves the neighborhood to a coordinate and derives the fee
// from the great-circle distance. An unrecognized neighborhood is not
// an error: it degrades to the flat base fee with no distance computed.
func (c *Calculator) Quote(neighborhood string) Quote {
	coords, ok := c.zones[normalizeZone(neighborhood)]
	if !ok {
		return Quote{
			Neighborhood: neighborhood,
			Fee:          c.baseFee,
		}
	}

	distance := Distance(c.origin, coords)
	return Quote{
		Neighborhood: neighborhood,
		DistanceKM:   distance,
		Fee:          c.feeFor(distance),
		ZoneKnown:    true,
	}
}

// feeFor converts a distance to a fee: the base fee covers the first
// baseRadiusKM kilometers, every kilometer beyond it is charged at
// perKmFee, rounded to the nearest centavo.
func (c *Calculator) feeFor(distanceKM float64) int64 {
	if distanceKM <= c.baseRadiusKM {
		return c.baseFee
	}
	surcharge := (distanceKM - c.baseRadiusKM) * float64(c.perKmFee)
	return c.baseFee + int64(math.Round(surcharge))
}

func normalizeZone(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
