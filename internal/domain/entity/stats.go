package entity

// PlatformStats is the aggregate served by GET /api/stats.
type PlatformStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalCompanies   int64 `json:"total_companies"`
	CountriesCovered int64 `json:"countries_covered"`
	Buyers           int64 `json:"buyers"`
	Sellers          int64 `json:"sellers"`
}

// Add folds a single user into the aggregate. Callers track distinct
// companies and countries themselves.
func (s *PlatformStats) Add(role TradingRole) {
	s.TotalUsers++
	if role.Buys() {
		s.Buyers++
	}
	if role.Sells() {
		s.Sellers++
	}
}
