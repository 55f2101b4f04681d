package models

// CategoryStats counts tasks within one category.
type CategoryStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// StatsResponse is the payload for GET /api/stats.
type StatsResponse struct {
	Categories     map[string]*CategoryStats `json:"categories"`
	TotalTasks     int                       `json:"total_tasks"`
	CompletedToday int                       `json:"completed_today"`
	XPToday        int                       `json:"xp_today"`
	TotalXP        int                       `json:"total_xp"`
	Level          int                       `json:"level"`
	XPForNextLevel int                       `json:"xp_for_next_level"`
	XPProgress     int                       `json:"xp_progress"`
	Streak         int                       `json:"streak"`
}

// BonusXPRequest is the payload for POST /api/stats/bonus.
type BonusXPRequest struct {
	XP     int    `json:"xp"`
	Reason string `json:"reason"`
}

// BonusXPResponse acknowledges a recorded bonus grant.
type BonusXPResponse struct {
	Status  string `json:"status"`
	XPAdded int    `json:"xp_added"`
	Reason  string `json:"reason"`
}

// QuickWin is a low-effort task suggestion.
type QuickWin struct {
	Task
	EffortMinutes int `json:"effort_minutes"`
	XP            int `json:"xp"`
}
