package syjon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Grid constants of the rendered Syjon timetable. Positions are percentages of the grid.
const (
	// HourUnit is the share of the grid height taken by one hour.
	HourUnit = 7.69230769231
	// DayWidth is the share of the grid width taken by one day column.
	DayWidth = 14.2857142857
	// GridStartHour is the hour at the top edge of the grid.
	GridStartHour = 8
	// GridSpan is the full height of the grid; top and height never exceed it.
	GridSpan = 100.0

	leftPrefixLen = len("left: ")
	valueEnd      = "%;"
	topMarker     = "top: "
	heightMarker  = "height: "
)

// DecodeDayOfWeek reads the horizontal offset of a block and returns its column's weekday.
func DecodeDayOfWeek(style string) (time.Weekday, error) {
	end := strings.Index(style, valueEnd)
	if end < leftPrefixLen {
		return 0, fmt.Errorf("%w: no horizontal offset in style %q", ErrParse, style)
	}

	offset, err := parsePercent(style[leftPrefixLen:end])
	if err != nil {
		return 0, err
	}

	index := math.Floor(offset/DayWidth) + 1
	if index < 0 || index > 6 {
		return 0, fmt.Errorf("%w: horizontal offset %v%% is outside the week grid", ErrParse, offset)
	}

	return time.Weekday(index), nil
}

// DecodeStartTime reads the vertical offset of a block and returns its start time,
// snapped to the nearest five minutes.
func DecodeStartTime(style string) (TimeOfDay, error) {
	offset, err := percentAfter(style, topMarker)
	if err != nil {
		return TimeOfDay{}, err
	}

	return roundToFiveMinutes(offset/HourUnit + GridStartHour), nil
}

// DecodeLength reads the height of a block and returns how long the activity lasts.
func DecodeLength(style string) (time.Duration, error) {
	offset, err := percentAfter(style, heightMarker)
	if err != nil {
		return 0, err
	}

	return time.Duration(offset / HourUnit * float64(time.Hour)), nil
}

// roundToFiveMinutes converts fractional hours into a clock time. Midpoints round to even,
// as the page's own decoder did.
func roundToFiveMinutes(hours float64) TimeOfDay {
	whole := math.Trunc(hours)
	minutes := (hours - whole) / (0.5 / 30)
	minutes = math.RoundToEven(minutes/5) * 5

	if minutes >= 60 {
		whole++
		minutes -= 60
	}

	return TimeOfDay{Hour: int(whole), Minute: int(minutes)}
}

// percentAfter parses the percentage between marker and the next "%;". It must lie
// within the grid, 0% to GridSpan.
func percentAfter(style, marker string) (float64, error) {
	begin := strings.Index(style, marker)
	if begin < 0 {
		return 0, fmt.Errorf("%w: %q not found in style %q", ErrParse, strings.TrimSpace(marker), style)
	}
	rest := style[begin+len(marker):]

	end := strings.Index(rest, valueEnd)
	if end < 0 {
		return 0, fmt.Errorf("%w: unterminated %q value in style %q", ErrParse, strings.TrimSpace(marker), style)
	}

	offset, err := parsePercent(rest[:end])
	if err != nil {
		return 0, err
	}
	if offset < 0 || offset > GridSpan {
		return 0, fmt.Errorf("%w: %q value %v%% is outside the grid", ErrParse, strings.TrimSpace(marker), offset)
	}

	return offset, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrParse, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrParse, s)
	}
	return v, nil
}
