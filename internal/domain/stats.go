package domain

import "context"

// NoRatingsSentinel is reported as the average rating when no ratings exist.
const NoRatingsSentinel = "No Ratings Yet"

// Age bands used by the charts endpoints. Ages outside every band (including
// under 18) are counted under "55+", and an age of zero is not counted at all;
// both behaviors are deliberate and documented.
var AgeBands = []string{"18-24", "25-34", "35-44", "45-54", "55+"}

// DashboardStats is the admin dashboard summary.
// swagger:model DashboardStats
type DashboardStats struct {
	TotalAttendees int    `json:"totalAttendees"`
	ActiveEvents   int    `json:"activeEvents"`
	AverageRating  string `json:"averageRating"`
}

// EventStats is the per-event summary.
// swagger:model EventStats
type EventStats struct {
	EventID        string `json:"eventId"`
	TotalAttendees int    `json:"totalAttendees"`
	AverageRating  string `json:"averageRating"`
}

// ChartData holds the site-wide distributions for the admin charts.
// swagger:model ChartData
type ChartData struct {
	AgeDistribution     map[string]int `json:"ageDistribution"`
	AttendanceBySession map[string]int `json:"attendanceBySession"`
	GenderDistribution  map[string]int `json:"genderDistribution"`
}

// EventChartData holds the distributions restricted to one event's attendees.
// swagger:model EventChartData
type EventChartData struct {
	EventID            string         `json:"eventId"`
	AgeDistribution    map[string]int `json:"ageDistribution"`
	GenderDistribution map[string]int `json:"genderDistribution"`
}

// StatsService derives dashboard-level and per-event statistics by scanning the
// user and event collections. Reads are eventually-consistent snapshots.
type StatsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	EventCharts(ctx context.Context) (*ChartData, error)
	EventStats(ctx context.Context, eventID string) (*EventStats, error)
	EventChartsByID(ctx context.Context, eventID string) (*EventChartData, error)
}
