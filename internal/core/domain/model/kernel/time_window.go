package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

const (
	// clockLayout is the layout of a single bound of a time window.
	clockLayout = "15:04"
	// windowSeparator separates the two bounds of a time window.
	windowSeparator = "-"
)

// ErrTimeWindowIsNotConstructed is returned when a zero-value TimeWindow is used.
var ErrTimeWindowIsNotConstructed = errors.New("TimeWindow must be created via ParseTimeWindow or NewTimeWindow")

// TimeWindow is an immutable clock-time interval [start, end] with minute precision.
//
// Both bounds are inclusive. The constructor does not require start <= end. A window whose
// start is after its end contains no other window, but it is contained by any window that
// covers both of its bounds.
//
// Example:
//
//	w, err := kernel.ParseTimeWindow("09:00-18:00")
//	if err != nil {
//	    // err wraps errs.ErrMalformedInterval
//	}
//	fmt.Println(w) // 09:00-18:00
type TimeWindow struct {
	// start is the first minute of the window, counted from midnight
	start int
	// end is the last minute of the window, counted from midnight
	end int

	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window from minutes since midnight.
//
// Parameters:
//   - start: first minute of the window, 0..1439
//   - end: last minute of the window, 0..1439
//
// Returns:
//   - TimeWindow: the constructed window
//   - error: ValueIsOutOfRangeError for a bound outside of a single day
func NewTimeWindow(start, end int) (TimeWindow, error) {
	const lastMinute = 24*60 - 1

	if err := errors.Join(
		checkMinute("start", start, lastMinute),
		checkMinute("end", end, lastMinute),
	); err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeWindow parses the "HH:MM-HH:MM" form used by the API and the storage layer.
//
// Returns:
//   - TimeWindow: the parsed window
//   - error: MalformedIntervalError when the value does not have two valid HH:MM bounds
//
// Example:
//
//	w, _ := kernel.ParseTimeWindow("10:00-11:30")
//	w.Start() // "10:00"
//	w.End()   // "11:30"
func ParseTimeWindow(value string) (TimeWindow, error) {
	bounds := strings.Split(value, windowSeparator)
	if len(bounds) != 2 {
		return TimeWindow{}, errs.NewMalformedIntervalErrorWithCause(
			value,
			fmt.Errorf("expected two bounds separated by %q", windowSeparator),
		)
	}

	start, err := parseClock(bounds[0])
	if err != nil {
		return TimeWindow{}, errs.NewMalformedIntervalErrorWithCause(value, err)
	}

	end, err := parseClock(bounds[1])
	if err != nil {
		return TimeWindow{}, errs.NewMalformedIntervalErrorWithCause(value, err)
	}

	return NewTimeWindow(start, end)
}

// ParseTimeWindows parses every value and reports all malformed ones at once.
func ParseTimeWindows(values []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(values))
	var parseErrs []error

	for _, v := range values {
		w, err := ParseTimeWindow(v)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		windows = append(windows, w)
	}

	if len(parseErrs) > 0 {
		return nil, errors.Join(parseErrs...)
	}

	return windows, nil
}

// FormatTimeWindows renders windows back into their "HH:MM-HH:MM" form.
func FormatTimeWindows(windows []TimeWindow) []string {
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.String())
	}
	return out
}

// Validate reports whether the window was created through a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the first bound as "HH:MM".
func (w TimeWindow) Start() string {
	return formatClock(w.start)
}

// End returns the last bound as "HH:MM".
func (w TimeWindow) End() string {
	return formatClock(w.end)
}

// String returns the "HH:MM-HH:MM" form of the window.
func (w TimeWindow) String() string {
	return w.Start() + windowSeparator + w.End()
}

// IsEqual compares two windows by their bounds.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start == other.start && w.end == other.end
}

// Contains reports whether other lies entirely inside w, bounds included.
// A window that merely intersects w is not contained.
//
// Example:
//
//	day, _ := kernel.ParseTimeWindow("09:00-18:00")
//	slot, _ := kernel.ParseTimeWindow("10:00-11:00")
//	day.Contains(slot) // true
//
//	morning, _ := kernel.ParseTimeWindow("09:00-10:00")
//	late, _ := kernel.ParseTimeWindow("09:30-11:00")
//	morning.Contains(late) // false, partial overlap only
func (w TimeWindow) Contains(other TimeWindow) bool {
	return w.start <= other.start && other.start <= w.end &&
		w.start <= other.end && other.end <= w.end
}

func parseClock(value string) (int, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func checkMinute(name string, value, lastMinute int) error {
	if value < 0 || value > lastMinute {
		return errs.NewValueIsOutOfRangeError(name, value, 0, lastMinute)
	}
	return nil
}
