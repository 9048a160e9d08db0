package date

import "fmt"

// Range is the closed interval of dates requested from a provider.
type Range struct{ From, To Date }

// Contains reports whether on is within the range, bounds included.
func (r Range) Contains(on Date) bool { return !on.Before(r.From) && !on.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// Months returns the number of monthly observations dated on the first of
// the month that fall in the range. It is zero for an empty range.
func (r Range) Months() int {
	if r.To.Before(r.From) {
		return 0
	}
	first := r.From.StartOf(Monthly)
	if first.Before(r.From) {
		first = first.AddMonths(1)
	}
	n := (r.To.Year()-first.Year())*12 + int(r.To.Month()-first.Month()) + 1
	return max(n, 0)
}
