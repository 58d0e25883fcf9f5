package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"syjonctl/pkg/syjon"

	ics "github.com/arran4/golang-ical"
)

// Options control how the weekly plan is laid out on the calendar
type Options struct {
	// Start is the first day of the first week; each activity starts on the first matching
	// weekday on or after it.
	Start time.Time
	// Weeks is the number of weeks to fill. Values below 1 count as one week.
	Weeks    int
	Location *time.Location
}

// GenerateICS writes one event per activity and week to w
func GenerateICS(activities []syjon.Activity, opts Options, w io.Writer) error {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	start := opts.Start.In(loc)
	now := time.Now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//syjonctl//Syjon timetable//PL")

	weeks := opts.Weeks
	if weeks < 1 {
		weeks = 1
	}

	// Each week is resolved in loc on its own so clock times survive DST changes.
	for i, a := range activities {
		first := FirstOccurrence(start, a, loc)
		length := a.Length.Round(time.Minute)

		for week := 0; week < weeks; week++ {
			begin := time.Date(first.Year(), first.Month(), first.Day()+7*week, a.Time.Hour, a.Time.Minute, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("syjonctl-%s-%d", begin.UTC().Format("20060102T150405Z"), i))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(begin)
			event.SetEndAt(begin.Add(length))
			event.SetSummary(a.SubjectName)
			event.SetLocation(a.Room)
			event.SetDescription(fmt.Sprintf("Group: %s\nTeachers: %s", a.Group, strings.Join(a.TeacherNames, ", ")))
		}
	}

	return cal.SerializeTo(w)
}

// FirstOccurrence returns the first start of a on or after the day of start, in loc.
func FirstOccurrence(start time.Time, a syjon.Activity, loc *time.Location) time.Time {
	offset := (int(a.DayOfWeek) - int(start.Weekday()) + 7) % 7
	return time.Date(start.Year(), start.Month(), start.Day()+offset, a.Time.Hour, a.Time.Minute, 0, 0, loc)
}
