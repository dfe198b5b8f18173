package insight

type AttritionRiskResponse struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type SalesForecastResponse struct {
	Forecast    string   `json:"forecast"`
	Suggestions []string `json:"suggestions"`
}

// CompanySnapshot is the aggregate fed into the prompts.
type CompanySnapshot struct {
	ActiveEmployees     int64
	TerminatedEmployees int64
	PendingLeaves       int64
	LateArrivals30d     int64
	SalesTarget90d      float64
	SalesAchieved90d    float64
}
