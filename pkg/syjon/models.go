package syjon

import (
	"cmp"
	"fmt"
	"time"
)

// Group identifies one parallel section of a subject type (e.g. lab group 2)
type Group struct {
	Type   string
	Number int
}

func (g Group) String() string {
	return fmt.Sprintf("%s %d", g.Type, g.Number)
}

// TimeOfDay is a wall clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after o.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	return cmp.Compare(t.Minutes(), o.Minutes())
}

// Add returns the time of day d after t, rounded to the minute and wrapped past midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := (t.Minutes() + int(d.Round(time.Minute)/time.Minute)) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := time.Parse("15:04", string(text))
	if err != nil {
		return fmt.Errorf("invalid time of day %q: %w", text, err)
	}
	*t = TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}
	return nil
}

// Activity is a single decoded entry of the weekly timetable
type Activity struct {
	Group        Group
	SubjectName  string
	TeacherNames []string
	Room         string
	DayOfWeek    time.Weekday
	Time         TimeOfDay
	Length       time.Duration
}

// End returns the time of day the activity finishes.
func (a Activity) End() TimeOfDay {
	return a.Time.Add(a.Length)
}

// Compare orders activities by day of week (Sunday first) and then by start time.
func Compare(a, b Activity) int {
	if c := cmp.Compare(a.DayOfWeek, b.DayOfWeek); c != 0 {
		return c
	}
	return a.Time.Compare(b.Time)
}

// Less reports whether a is scheduled before b.
func Less(a, b Activity) bool {
	return Compare(a, b) < 0
}
