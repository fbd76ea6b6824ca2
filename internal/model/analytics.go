package model

// AnalyticsResponse represents the real-time click analytics of a code
type AnalyticsResponse struct {
	Code       string       `json:"code"`
	PV         int64        `json:"pv"`
	UV         int64        `json:"uv"`
	TopSources []SourceStat `json:"topSources"`
}

// SourceStat represents source statistics
type SourceStat struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// Stats represents general statistics
type Stats struct {
	PV int64 `json:"pv"`
	UV int64 `json:"uv"`
}
