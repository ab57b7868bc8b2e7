package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/dailydeck/internal/model"
)

// ParseClock converts a 12-hour label such as "6:00 AM" or "10:30pm" into
// minutes since midnight. Anything else, including 24-hour labels, is
// rejected.
func ParseClock(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	var meridiem string
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
	default:
		return 0, false
	}
	s = strings.TrimSuffix(s, meridiem)
	if strings.HasSuffix(s, "  ") {
		return 0, false
	}
	s = strings.TrimSuffix(s, " ")

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 1 || h > 12 || hh[0] == '+' || hh[0] == '-' {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || mm[0] == '+' || mm[0] == '-' {
		return 0, false
	}

	h %= 12
	if meridiem == "PM" {
		h += 12
	}
	return h*60 + m, true
}

// FormatClock renders minutes since midnight back as a 12-hour label.
func FormatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	h, m := minutes/60, minutes%60
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + ":" + pad2(m) + " " + meridiem
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// MinuteOfDay returns t's wall-clock position in minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Less is the display ordering: parsed times ascending, unparseable labels
// after every parsed one, insertion order breaking ties in both groups.
func Less(a, b model.RoutineItem) bool {
	am, aok := ParseClock(a.Time)
	bm, bok := ParseClock(b.Time)
	switch {
	case aok && bok:
		if am != bm {
			return am < bm
		}
	case aok != bok:
		return aok
	}
	return a.InsertionOrder < b.InsertionOrder
}
