package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/domain"
)

const (
	calendarCellWidth = 4
	calendarBarWidth  = 12
	stampGoalMet      = "★"
	stampSomeProgress = "·"
)

var weekdayHeadings = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// StampCalendar is the read-only month view of daily progress. A nil
// Snapshot renders the month containing Today with no stamps and DefaultGoal.
type StampCalendar struct {
	Snapshot    *domain.ProgressSnapshot
	Today       time.Time
	DefaultGoal int
}

func (c StampCalendar) today() time.Time {
	if c.Snapshot != nil {
		return c.Snapshot.Today
	}
	return c.Today
}

func (c StampCalendar) goal() int {
	if c.Snapshot != nil {
		return c.Snapshot.DailyGoal
	}
	return c.DefaultGoal
}

func (c StampCalendar) View() string {
	body := c.renderMonth() + "\n\n" + c.renderSummary()
	return formatter.RenderBoxColored("スタンプカード", body, formatter.ColorYellow)
}

func (c StampCalendar) renderMonth() string {
	today := c.today()
	y, m, _ := today.Date()
	loc := today.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
	gridWidth := 7 * calendarCellWidth

	var b strings.Builder
	title := fmt.Sprintf("%d年%d月", y, int(m))
	b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, formatter.Bold(title)))
	b.WriteString("\n")

	for i, wd := range weekdayHeadings {
		style := formatter.StyleDim
		switch i {
		case 0:
			style = formatter.StyleRed
		case 6:
			style = formatter.StyleBlue
		}
		b.WriteString(" " + style.Render(wd) + " ")
	}
	b.WriteString("\n")

	col := int(first.Weekday())
	b.WriteString(strings.Repeat(" ", col*calendarCellWidth))
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		b.WriteString(c.renderDay(day, d == today.Day()))
		col++
		if col == 7 && d < daysInMonth {
			b.WriteString("\n")
			col = 0
		}
	}
	return b.String()
}

func (c StampCalendar) renderDay(day time.Time, isToday bool) string {
	num := fmt.Sprintf("%2d", day.Day())
	if isToday {
		num = lipgloss.NewStyle().Reverse(true).Bold(true).Render(num)
	}

	mark := " "
	switch {
	case c.Snapshot.GoalMetOn(day):
		mark = formatter.StylePink.Bold(true).Render(stampGoalMet)
	case c.Snapshot.CountOn(day) > 0:
		mark = formatter.Dim(stampSomeProgress)
	}
	return " " + num + mark
}

func (c StampCalendar) renderSummary() string {
	var todayCount int
	if c.Snapshot != nil {
		todayCount = c.Snapshot.TodayCount
	}
	goal := c.goal()

	var b strings.Builder
	b.WriteString(formatter.Dim("きょう   "))
	b.WriteString(fmt.Sprintf("%s / %d  ", formatter.Bold(fmt.Sprintf("%d", todayCount)), goal))
	b.WriteString(formatter.RenderProgress(c.Snapshot.TodayRatio(), calendarBarWidth))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("れんぞく "))
	b.WriteString(formatter.Bold(fmt.Sprintf("%dにち", c.Snapshot.Streak())))
	if goal > 0 && todayCount >= goal {
		b.WriteString("  " + formatter.StylePink.Bold(true).Render(stampGoalMet+" きょうのもくひょう クリア!"))
	}
	return b.String()
}
