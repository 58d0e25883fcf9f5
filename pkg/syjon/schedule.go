package syjon

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BuildSchedule decodes every activity of the page that belongs to a selected group and returns
// them ordered by day and start time.
func BuildSchedule(html string, sel Selection) ([]Activity, error) {
	doc, err := ParseDocument(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return BuildScheduleFromDocument(doc, sel)
}

// BuildScheduleFromDocument is BuildSchedule over an already parsed page.
// A single undecodable block fails the whole call.
func BuildScheduleFromDocument(doc *goquery.Document, sel Selection) ([]Activity, error) {
	var activities []Activity

	for block := range Blocks(doc) {
		g, err := block.Group()
		if err != nil {
			return nil, err
		}
		if !sel.Matches(g) {
			continue
		}

		activity, err := decodeActivity(block, g)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	// Ties keep document order.
	slices.SortStableFunc(activities, Compare)
	return activities, nil
}

func decodeActivity(block Block, g Group) (Activity, error) {
	subject, err := block.SubjectName()
	if err != nil {
		return Activity{}, err
	}
	teachers, err := block.TeacherNames()
	if err != nil {
		return Activity{}, err
	}
	room, err := block.Room()
	if err != nil {
		return Activity{}, err
	}

	style := block.Style()
	day, err := DecodeDayOfWeek(style)
	if err != nil {
		return Activity{}, err
	}
	start, err := DecodeStartTime(style)
	if err != nil {
		return Activity{}, err
	}
	length, err := DecodeLength(style)
	if err != nil {
		return Activity{}, err
	}

	return Activity{
		Group:        g,
		SubjectName:  subject,
		TeacherNames: teachers,
		Room:         room,
		DayOfWeek:    day,
		Time:         start,
		Length:       length,
	}, nil
}
