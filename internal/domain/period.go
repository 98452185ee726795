package domain

import (
	"fmt"
	"time"
)

const WeekLabelLayout = "02.01.2006"

type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) String() string {
	return fmt.Sprintf("%s – %s", p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
}

// Week representa uma semana de segunda a domingo
type Week struct {
	Start time.Time
	End   time.Time
}

func (w Week) String() string {
	return fmt.Sprintf("%s-%s", w.Start.Format(WeekLabelLayout), w.End.Format(WeekLabelLayout))
}

func (w Week) Period() Period {
	return Period{Start: w.Start, End: w.End}
}

// Quarter identifica um trimestre (1..4) de um ano
type Quarter struct {
	Year    int    `json:"year"`
	Quarter int    `json:"quarter"`
	Label   string `json:"label"`
}

func (q Quarter) Key() string {
	return fmt.Sprintf("%d_%d", q.Year, q.Quarter)
}
