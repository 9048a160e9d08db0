package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period, it sets how long cached responses live.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = [...]string{"daily", "weekly", "monthly", "quarterly", "yearly"}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod parses a period name, singular names are accepted.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", s, strings.Join(periodNames[:], ", "))
}

// Key names the period of p that contains d: "2025-10-18", "2025-W42",
// "2025-10", "2025-Q4" or "2025". Two dates share a key if and only if they
// are in the same period.
func (p Period) Key(d Date) string {
	switch p {
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return d.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", d.Year(), (d.Month()-1)/3+1)
	case Yearly:
		return d.Format("2006")
	default:
		return d.String()
	}
}
