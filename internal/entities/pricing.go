package entities

// PriceQuote carries the full pricing breakdown so callers can audit or
// display every component, not just the total. Amounts are integer FCFA.
type PriceQuote struct {
	DistanceKm            float64
	PackageCount          int
	Express               bool
	BasePrice             int64
	AdditionalPackages    int
	SurchargePercent      int
	MultiPackageSurcharge int64
	ExpressCharge         int64
	TotalPrice            int64
}
