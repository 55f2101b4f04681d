// Package stats computes XP, levels and task counts from the parsed todo
// file. Everything here is pure arithmetic; persistence of bonus grants
// lives in the store package.
package stats

import (
	"math"

	"github.com/questlog/questlog/internal/markdown"
	"github.com/questlog/questlog/internal/models"
)

// XPPerLevel is the flat XP requirement for each level.
const XPPerLevel = 500

// TaskXP scores one task: 100 * sqrt(1 + minutes/60) * friction, rounded,
// with a 1.5x bonus when every subtask is complete.
func TaskXP(t *models.Task) int {
	minutes := 30
	if t.Effort != "" {
		minutes = markdown.ParseEffort(t.Effort)
	}
	friction := t.Friction
	if friction == 0 {
		friction = 2
	}

	xp := int(math.Round(100 * math.Sqrt(1+float64(minutes)/60) * float64(friction)))

	if len(t.Subtasks) > 0 {
		completed := 0
		for _, sub := range t.Subtasks {
			if sub.IsCompleted {
				completed++
			}
		}
		if completed == len(t.Subtasks) {
			xp = int(float64(xp) * 1.5)
		}
	}
	return xp
}

// Compute walks every section and produces the stats payload. today is the
// ISO date (in the configured timezone) used to bucket completions, and
// bonusTotal/bonusToday come from the persisted ledger.
func Compute(tf models.TaskFile, today string, bonusTotal, bonusToday int) *models.StatsResponse {
	resp := &models.StatsResponse{
		Categories:     make(map[string]*models.CategoryStats),
		Level:          1,
		XPForNextLevel: XPPerLevel,
	}

	for _, section := range models.Sections {
		for _, task := range tf[section] {
			walk(task, today, resp)
		}
	}

	resp.TotalXP += bonusTotal
	resp.XPToday += bonusToday
	resp.Level = 1 + resp.TotalXP/XPPerLevel
	resp.XPProgress = resp.TotalXP % XPPerLevel
	return resp
}

func walk(t *models.Task, today string, resp *models.StatsResponse) {
	resp.TotalTasks++

	if t.Category != "" && !t.IsIdea {
		cs, ok := resp.Categories[t.Category]
		if !ok {
			cs = &models.CategoryStats{}
			resp.Categories[t.Category] = cs
		}
		cs.Total++
		if t.IsCompleted {
			cs.Completed++
		}
	}

	if t.IsCompleted {
		xp := TaskXP(t)
		resp.TotalXP += xp
		if t.CompletedAt != "" && len(t.CompletedAt) >= len(today) && t.CompletedAt[:len(today)] == today {
			resp.CompletedToday++
			resp.XPToday += xp
		}
	}

	for _, sub := range t.Subtasks {
		walk(sub, today, resp)
	}
}

// QuickWin picks the cheapest incomplete task worth suggesting: not an idea,
// at most 30 minutes of effort, lowest effort first with XP as tiebreaker.
// Returns nil when nothing qualifies.
func QuickWin(tf models.TaskFile) *models.QuickWin {
	var best *models.QuickWin

	var visit func(t *models.Task)
	visit = func(t *models.Task) {
		if !t.IsCompleted && !t.IsIdea {
			minutes := 30
			if t.Effort != "" {
				minutes = markdown.ParseEffort(t.Effort)
			}
			if minutes <= 30 {
				candidate := &models.QuickWin{
					Task:          *t,
					EffortMinutes: minutes,
					XP:            TaskXP(t),
				}
				if best == nil ||
					candidate.EffortMinutes < best.EffortMinutes ||
					(candidate.EffortMinutes == best.EffortMinutes && candidate.XP > best.XP) {
					best = candidate
				}
			}
		}
		for _, sub := range t.Subtasks {
			visit(sub)
		}
	}

	for _, section := range models.Sections {
		for _, task := range tf[section] {
			visit(task)
		}
	}
	return best
}
