package pricing

import (
	"math"

	"pako/internal/entities"
)

// Tariff constants, integer FCFA.
const (
	PricePerKm               = 200
	MultiPackageSurchargePct = 5 // percent per package beyond the first
	ExpressCharge            = 2000
)

// Engine computes delivery prices. Pure and stateless; the authoritative price
// is always computed here on the server, never taken from a client.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Quote prices a delivery. All rounding is half-up to the nearest FCFA.
func (e *Engine) Quote(distanceKm float64, packageCount int, express bool) (*entities.PriceQuote, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm <= 0 {
		return nil, ErrInvalidPricingInput
	}
	if packageCount <= 0 {
		return nil, ErrInvalidPricingInput
	}

	basePrice := roundHalfUp(distanceKm * PricePerKm)

	additionalPackages := packageCount - 1
	surchargePct := additionalPackages * MultiPackageSurchargePct
	surcharge := roundHalfUp(float64(basePrice) * float64(surchargePct) / 100)

	var expressCharge int64
	if express {
		expressCharge = ExpressCharge
	}

	return &entities.PriceQuote{
		DistanceKm:            distanceKm,
		PackageCount:          packageCount,
		Express:               express,
		BasePrice:             basePrice,
		AdditionalPackages:    additionalPackages,
		SurchargePercent:      surchargePct,
		MultiPackageSurcharge: surcharge,
		ExpressCharge:         expressCharge,
		TotalPrice:            basePrice + surcharge + expressCharge,
	}, nil
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
