package engine

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"progtrack/backend/models"
)

const dateLayout = "2006-01-02"

// Options configures a Calculator.
type Options struct {
	// ClampWeeklyRatio caps each week's proportional ratio at 1.0 in the
	// scoring path. Off by default: overachieving weeks keep counting.
	ClampWeeklyRatio bool
	// Now overrides the clock, mainly for tests. Defaults to time.Now.
	Now func() time.Time
	// Logger receives configuration warnings in addition to the returned
	// diagnostics. Optional.
	Logger *log.Logger
}

// Diagnostic records a configuration problem found during a calculation. The
// offending item contributes zero points; the calculation never aborts.
type Diagnostic struct {
	ItemID string `json:"item_id"`
	Issue  string `json:"issue"`
}

// Calculator computes progress for one program over an entry-log snapshot.
// It holds no mutable state between calls: program and options are fixed at
// construction and every method recomputes from the data it is given.
type Calculator struct {
	program *models.Program
	opts    Options
}

func NewCalculator(program *models.Program, opts Options) *Calculator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Calculator{program: program, opts: opts}
}

// today returns the current calendar date at UTC midnight, comparable with
// parsed program dates.
func (c *Calculator) today() time.Time {
	t, _ := time.Parse(dateLayout, c.opts.Now().Format(dateLayout))
	return t
}

// programDates parses the program's date range. ErrNoProgram when no program
// is attached, ErrInvalidDates when either bound is missing or malformed.
func (c *Calculator) programDates() (start, end time.Time, err error) {
	if c.program == nil {
		return time.Time{}, time.Time{}, ErrNoProgram
	}
	if c.program.StartDate == "" || c.program.EndDate == "" {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	start, err = time.Parse(dateLayout, c.program.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	end, err = time.Parse(dateLayout, c.program.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	return start, end, nil
}

func (c *Calculator) diag(diags *[]Diagnostic, itemID, format string, args ...any) {
	issue := fmt.Sprintf(format, args...)
	*diags = append(*diags, Diagnostic{ItemID: itemID, Issue: issue})
	if c.opts.Logger != nil {
		c.opts.Logger.Printf("config warning [%s]: %s", itemID, issue)
	}
}

// sortedDates returns the entry log's dates in chronological order. ISO dates
// sort lexicographically, so a plain string sort is a date sort.
func sortedDates(data models.UserData) []string {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
