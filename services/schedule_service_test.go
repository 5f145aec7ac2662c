package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wambuidev/learning_center/models"
	"gorm.io/datatypes"
)

func strptr(s string) *string { return &s }

// 2026-01-04 is a Sunday.
var sunday = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)

func recurringClass(name string, weekdays []int, start string) models.Class {
	return models.Class{
		ID:        uuid.New(),
		Name:      name,
		Weekdays:  datatypes.JSONSlice[int](weekdays),
		StartTime: strptr(start),
	}
}

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"14:00", "14:00", true},
		{"9:5", "09:05", true},
		{"14:00:30", "14:00", true}, // seconds discarded
		{" 08:15 ", "08:15", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeClock(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestMatchesRecurring(t *testing.T) {
	class := recurringClass("Math", []int{1, 3, 5}, "14:00")
	spec := ScheduleSpecOf(class)

	monday := sunday.AddDate(0, 0, 1)
	tuesday := sunday.AddDate(0, 0, 2)

	assert.True(t, MatchesRecurring(spec, monday, "14:00"))
	assert.True(t, MatchesRecurring(spec, monday, "14:00:45"))
	assert.False(t, MatchesRecurring(spec, monday, "15:00"))
	assert.False(t, MatchesRecurring(spec, tuesday, "14:00"))
	assert.False(t, MatchesRecurring(spec, monday, "bogus"))
}

func TestMatchesSessionIgnoresStoredTimeOfDay(t *testing.T) {
	wednesday := sunday.AddDate(0, 0, 3)
	class := models.Class{
		ID:   uuid.New(),
		Name: "Chess",
		Sessions: []models.ClassSession{
			// stored date carries a time-of-day component; only the calendar
			// date must be compared
			{Date: wednesday.Add(9 * time.Hour), StartTime: "14:00"},
		},
	}
	spec := ScheduleSpecOf(class)

	assert.True(t, MatchesSession(spec, wednesday, "14:00"))
	assert.False(t, MatchesSession(spec, wednesday, "15:00"))
	assert.False(t, MatchesSession(spec, wednesday.AddDate(0, 0, 1), "14:00"))
}

func TestOccupiesIsDeterministic(t *testing.T) {
	class := recurringClass("Math", []int{2}, "10:00")
	spec := ScheduleSpecOf(class)
	tuesday := sunday.AddDate(0, 0, 2)

	first := Occupies(spec, tuesday, "10:00")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Occupies(spec, tuesday, "10:00"))
	}
	assert.True(t, first)
}

func TestMalformedRecurringTimeNeverMatches(t *testing.T) {
	class := recurringClass("Broken", []int{0, 1, 2, 3, 4, 5, 6}, "25:99")
	spec := ScheduleSpecOf(class)
	assert.False(t, Occupies(spec, sunday, "14:00"))
}

func TestEmptyScheduleNeverOccupies(t *testing.T) {
	spec := ScheduleSpecOf(models.Class{ID: uuid.New(), Name: "Empty"})
	assert.Nil(t, spec.Recurring)
	assert.False(t, Occupies(spec, sunday, "14:00"))
}

func TestWeekSunday(t *testing.T) {
	thursday := sunday.AddDate(0, 0, 4)
	assert.Equal(t, sunday, WeekSunday(thursday))
	assert.Equal(t, sunday, WeekSunday(sunday))
	assert.Equal(t, sunday, WeekSunday(thursday.Add(23*time.Hour)))
}

func TestBuildWeekGridEndToEnd(t *testing.T) {
	wednesday := sunday.AddDate(0, 0, 3)

	classA := recurringClass("Class A", []int{1, 3, 5}, "14:00") // Mon/Wed/Fri
	classB := models.Class{
		ID:   uuid.New(),
		Name: "Class B",
		Sessions: []models.ClassSession{
			{Date: wednesday, StartTime: "14:00"},
		},
	}

	grid := BuildWeekGrid([]models.Class{classA, classB}, wednesday, DefaultTimeSlots)

	// Wednesday 14:00 holds both, A first (input order)
	wedCell := grid.Cells[3]["14:00"]
	assert.Len(t, wedCell, 2)
	assert.Equal(t, classA.ID, wedCell[0].Class.ID)
	assert.False(t, wedCell[0].IsOneTime)
	assert.Equal(t, classB.ID, wedCell[1].Class.ID)
	assert.True(t, wedCell[1].IsOneTime)

	// A alone on Monday and Friday
	for _, day := range []int{1, 5} {
		cell := grid.Cells[day]["14:00"]
		assert.Len(t, cell, 1)
		assert.Equal(t, classA.ID, cell[0].Class.ID)
	}

	// every other Wednesday slot is free
	for _, slot := range DefaultTimeSlots {
		if slot == "14:00" {
			continue
		}
		assert.Empty(t, grid.Cells[3][slot])
	}

	// concrete dates anchored to the week's Sunday
	assert.Equal(t, sunday, grid.Dates[0])
	assert.Equal(t, wednesday, grid.Dates[3])
}

func TestBuildWeekGridNoDoubleBooking(t *testing.T) {
	wednesday := sunday.AddDate(0, 0, 3)

	// matches Wednesday 14:00 through both paths
	class := recurringClass("Both", []int{3}, "14:00")
	class.Sessions = []models.ClassSession{{Date: wednesday, StartTime: "14:00"}}

	grid := BuildWeekGrid([]models.Class{class}, sunday, []string{"14:00"})

	cell := grid.Cells[3]["14:00"]
	assert.Len(t, cell, 1)
	// session path wins the label
	assert.True(t, cell[0].IsOneTime)
}

func TestBuildWeekGridGuardIsPerCell(t *testing.T) {
	// recurring on two weekdays; the dedup guard must not leak between cells
	class := recurringClass("Twice", []int{1, 4}, "09:00")

	grid := BuildWeekGrid([]models.Class{class}, sunday, []string{"09:00"})

	assert.Len(t, grid.Cells[1]["09:00"], 1)
	assert.Len(t, grid.Cells[4]["09:00"], 1)
}
