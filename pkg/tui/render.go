package tui

import (
	"fmt"
	"slices"
	"strings"

	"syjonctl/pkg/syjon"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// typeLabel title-cases subject types, which Syjon prints in whatever case the faculty typed.
func typeLabel(kind string) string {
	return cases.Title(language.Polish).String(kind)
}

// RenderSchedule lays out the weekly plan as a table, one row per activity.
// The day is printed only on the first row of each day.
func RenderSchedule(activities []syjon.Activity) string {
	if len(activities) == 0 {
		return mutedStyle.Render("No activities for the selected groups.")
	}

	var rows [][]string
	for i, a := range activities {
		day := ""
		if i == 0 || activities[i-1].DayOfWeek != a.DayOfWeek {
			day = a.DayOfWeek.String()
		}
		rows = append(rows, []string{
			day,
			fmt.Sprintf("%s-%s", a.Time, a.End()),
			a.SubjectName,
			fmt.Sprintf("%s %d", typeLabel(a.Group.Type), a.Group.Number),
			a.Room,
			strings.Join(a.TeacherNames, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Foreground(accentStyle.GetForeground())
			}
			return cellStyle
		}).
		Headers("Day", "Time", "Subject", "Group", "Room", "Teachers").
		Rows(rows...)

	return t.String()
}

// RenderGroups lists every subject type with the number of parallel groups, sorted by type.
func RenderGroups(groups map[string]int) string {
	if len(groups) == 0 {
		return mutedStyle.Render("No activities found on the page.")
	}

	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	var rows [][]string
	for _, kind := range kinds {
		rows = append(rows, []string{typeLabel(kind), kind, fmt.Sprintf("%d", groups[kind])})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Foreground(accentStyle.GetForeground())
			}
			return cellStyle
		}).
		Headers("Type", "Selector", "Groups").
		Rows(rows...)

	return t.String()
}
