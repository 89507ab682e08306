package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type StatsResponse struct {
	TotalProjects int64 `json:"total_projects"`
	TotalUsers    int64 `json:"total_users"`
	TodayVisits   int64 `json:"today_visits"`
	TotalLikes    int64 `json:"total_likes"`
}
