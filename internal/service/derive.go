package service

import (
	"fmt"
	"math"
	"time"
)

// Placeholders rendered when a read-side join hits a dangling
// reference. Joins never fail a read.
const (
	UnknownProject = "Unknown Project"
	UnknownTest    = "Unknown Test"
)

// nextInspectionLabel renders the countdown label for the earliest
// pending reminder. Comparisons use UTC calendar days: a schedule in
// the past is overdue even within the current day.
func nextInspectionLabel(now, scheduledFor time.Time) string {
	now = now.UTC()
	scheduledFor = scheduledFor.UTC()

	if scheduledFor.Before(now) {
		return "Overdue"
	}
	if sameDay(now, scheduledFor) {
		return "Today"
	}
	if sameDay(now.AddDate(0, 0, 1), scheduledFor) {
		return "Tomorrow"
	}
	days := int(math.Ceil(scheduledFor.Sub(now).Hours() / 24))
	if days < 2 {
		days = 2
	}
	return fmt.Sprintf("%d days", days)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
