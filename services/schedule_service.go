package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wambuidev/learning_center/models"
)

// RecurringPattern is a weekly-repeating schedule: a set of weekday indices
// (0=Sunday..6=Saturday) and a single start time.
type RecurringPattern struct {
	Weekdays  []int
	StartTime string
}

type SessionTime struct {
	Date      time.Time
	StartTime string
}

// ScheduleSpec is the explicit shape of a class's schedule data: an optional
// recurring pattern plus zero or more one-off sessions. Both may be present
// at the same time.
type ScheduleSpec struct {
	Recurring *RecurringPattern
	Sessions  []SessionTime
}

func ScheduleSpecOf(class models.Class) ScheduleSpec {
	spec := ScheduleSpec{}
	if len(class.Weekdays) > 0 && class.StartTime != nil {
		spec.Recurring = &RecurringPattern{
			Weekdays:  class.Weekdays,
			StartTime: *class.StartTime,
		}
	}
	for _, s := range class.Sessions {
		spec.Sessions = append(spec.Sessions, SessionTime{Date: s.Date, StartTime: s.StartTime})
	}
	return spec
}

// NormalizeClock reduces a time-of-day string to "HH:MM" at minute
// granularity. Seconds and anything finer are discarded. Malformed input
// reports ok=false rather than an error.
func NormalizeClock(s string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return "", false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MatchesRecurring reports whether the recurring pattern puts the class on
// targetDate at targetClock. Absent pattern or unparseable times never match.
func MatchesRecurring(spec ScheduleSpec, targetDate time.Time, targetClock string) bool {
	if spec.Recurring == nil || len(spec.Recurring.Weekdays) == 0 {
		return false
	}
	target, ok := NormalizeClock(targetClock)
	if !ok {
		return false
	}
	recurring, ok := NormalizeClock(spec.Recurring.StartTime)
	if !ok || recurring != target {
		return false
	}
	weekday := int(targetDate.Weekday())
	for _, wd := range spec.Recurring.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// MatchesSession reports whether any one-off session falls on targetDate at
// targetClock. Session dates are compared date-only; any time-of-day carried
// by the stored date is ignored.
func MatchesSession(spec ScheduleSpec, targetDate time.Time, targetClock string) bool {
	target, ok := NormalizeClock(targetClock)
	if !ok {
		return false
	}
	for _, session := range spec.Sessions {
		clock, ok := NormalizeClock(session.StartTime)
		if !ok {
			continue
		}
		if clock == target && sameDate(session.Date, targetDate) {
			return true
		}
	}
	return false
}

// Occupies reports whether the class occupies the given day/time slot through
// either its recurring pattern or a one-off session.
func Occupies(spec ScheduleSpec, targetDate time.Time, targetClock string) bool {
	return MatchesRecurring(spec, targetDate, targetClock) ||
		MatchesSession(spec, targetDate, targetClock)
}

type GridEntry struct {
	Class     models.Class `json:"class"`
	IsOneTime bool         `json:"is_one_time"`
}

// WeekGrid is the display grid for one room's week: 7 day columns, each a
// map from slot label to the classes occupying it in input order.
type WeekGrid struct {
	Anchor time.Time                 `json:"anchor"`
	Dates  [7]time.Time              `json:"dates"`
	Slots  []string                  `json:"slots"`
	Cells  [7]map[string][]GridEntry `json:"cells"`
}

// DefaultTimeSlots is the application's fixed hourly range. BuildWeekGrid
// accepts any ordered slot list; this is only the default the handlers use.
var DefaultTimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// WeekSunday returns midnight of the Sunday of the week containing anchor.
func WeekSunday(anchor time.Time) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// BuildWeekGrid scans every (day, slot, class) triple for the week containing
// anchor. A class matching a cell through both its recurring pattern and a
// session is placed once, labeled one-time — session data is more specific,
// so it wins the label. The placed-guard is scoped per cell.
func BuildWeekGrid(classes []models.Class, anchor time.Time, slots []string) WeekGrid {
	grid := WeekGrid{Anchor: anchor, Slots: slots}
	sunday := WeekSunday(anchor)

	specs := make([]ScheduleSpec, len(classes))
	for i, class := range classes {
		specs[i] = ScheduleSpecOf(class)
	}

	for day := 0; day < 7; day++ {
		date := sunday.AddDate(0, 0, day)
		grid.Dates[day] = date
		grid.Cells[day] = make(map[string][]GridEntry)

		for _, slot := range slots {
			placed := make(map[uuid.UUID]bool)
			var entries []GridEntry
			for i, class := range classes {
				recurring := MatchesRecurring(specs[i], date, slot)
				oneTime := MatchesSession(specs[i], date, slot)
				if (!recurring && !oneTime) || placed[class.ID] {
					continue
				}
				placed[class.ID] = true
				entries = append(entries, GridEntry{Class: class, IsOneTime: oneTime})
			}
			if len(entries) > 0 {
				grid.Cells[day][slot] = entries
			}
		}
	}

	return grid
}
