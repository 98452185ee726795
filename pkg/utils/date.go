package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/settlement-report-api/internal/domain"
)

var quarterMonths = map[int]string{
	1: "янв-мар",
	2: "апр-июн",
	3: "июл-сен",
	4: "окт-дек",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseWeekLabel converte "DD.MM.YYYY-DD.MM.YYYY" em um período
func ParseWeekLabel(label string) (domain.Period, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return domain.Period{}, fmt.Errorf("período inválido: %q", label)
	}

	start, err := time.Parse(domain.WeekLabelLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.Period{}, fmt.Errorf("data inicial inválida: %w", err)
	}

	end, err := time.Parse(domain.WeekLabelLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Period{}, fmt.Errorf("data final inválida: %w", err)
	}

	if end.Before(start) {
		return domain.Period{}, fmt.Errorf("data final anterior à inicial: %q", label)
	}

	return domain.Period{Start: start, End: end}, nil
}

// DatesInRange lista os dias (YYYY-MM-DD) entre start e end, inclusive
func DatesInRange(start, end time.Time) []string {
	start = truncateDay(start)
	end = truncateDay(end)

	dates := make([]string, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(time.DateOnly))
	}
	return dates
}

// RollingWeeks retorna as últimas n semanas fechadas, da mais recente para a mais antiga.
// Na segunda-feira a semana recém-encerrada também é ignorada, pois os dados
// do marketplace chegam com atraso.
func RollingWeeks(n int, today time.Time) []domain.Week {
	previousMonday := lastClosedMonday(today)

	weeks := make([]domain.Week, 0, n)
	for i := 0; i < n; i++ {
		start := previousMonday.AddDate(0, 0, -7*i)
		weeks = append(weeks, domain.Week{Start: start, End: start.AddDate(0, 0, 6)})
	}
	return weeks
}

// QuarterList enumera os trimestres desde epochYear até o trimestre atual
func QuarterList(epochYear int, today time.Time) []domain.Quarter {
	currentQuarter := quarterOf(today)

	quarters := make([]domain.Quarter, 0)
	for year := epochYear; year <= today.Year(); year++ {
		last := 4
		if year == today.Year() {
			last = currentQuarter
		}
		for q := 1; q <= last; q++ {
			quarters = append(quarters, domain.Quarter{
				Year:    year,
				Quarter: q,
				Label:   fmt.Sprintf("%s %d", quarterMonths[q], year),
			})
		}
	}
	return quarters
}

// QuarterWeeks enumera as semanas fechadas cuja segunda-feira cai dentro do trimestre
func QuarterWeeks(year, quarter int, today time.Time) []domain.Week {
	if quarter < 1 || quarter > 4 {
		return []domain.Week{}
	}

	firstDay := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 3, -1)

	start := firstDay
	if wd := weekdayIndex(firstDay); wd != 0 {
		start = firstDay.AddDate(0, 0, 7-wd)
	}

	end := mondayOf(lastDay)
	if limit := lastClosedMonday(today); limit.Before(end) {
		end = limit
	}

	weeks := make([]domain.Week, 0)
	for monday := start; !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		weeks = append(weeks, domain.Week{Start: monday, End: monday.AddDate(0, 0, 6)})
	}
	return weeks
}

func lastClosedMonday(today time.Time) time.Time {
	monday := mondayOf(today).AddDate(0, 0, -7)
	if today.Weekday() == time.Monday {
		monday = monday.AddDate(0, 0, -7)
	}
	return monday
}

func mondayOf(t time.Time) time.Time {
	day := truncateDay(t)
	return day.AddDate(0, 0, -weekdayIndex(day))
}

// weekdayIndex retorna 0 para segunda e 6 para domingo
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
