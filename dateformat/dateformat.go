// Package dateformat converts between the date spellings that reach the asset ledger
// (DD/MM/YYYY from forms, YYYY-MM-DD from date pickers and storage, assorted free-form
// values from imports) and measures coarse elapsed time between two of them.
package dateformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	DisplayLayout = "02/01/2006"
	StorageLayout = "2006-01-02"

	InvalidDate = "Invalid Date"
	Unknown     = "Unknown"

	minYear = 1900
	maxYear = 2100
)

// extra layouts tried before handing the value to cast.
var genericLayouts = []string{
	"2006/01/02",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ToDisplayForm renders s as DD/MM/YYYY. Input that cannot be understood is returned unchanged.
func ToDisplayForm(s string) string {
	if s == "" {
		return s
	}
	if strings.Contains(s, "/") {
		if parts := strings.Split(s, "/"); len(parts[0]) <= 2 {
			return s
		}
	} else if y, m, d, ok := splitDash(s); ok {
		return fmt.Sprintf("%s/%s/%s", pad2(d), pad2(m), y)
	}

	if t, ok := parseGeneric(s); ok {
		return t.Format(DisplayLayout)
	}
	return s
}

// ToStorageForm renders s as YYYY-MM-DD. Input that cannot be understood is returned unchanged.
func ToStorageForm(s string) string {
	if s == "" {
		return s
	}
	if _, _, _, ok := splitDash(s); ok {
		return s
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 && len(parts[0]) <= 2 && allDigits(parts...) {
			return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
		}
	}

	if t, ok := parseGeneric(s); ok {
		return t.Format(StorageLayout)
	}
	return s
}

// Parse reads s as a calendar date at UTC midnight. Slash values are positional
// day/month/year, dash values year-month-day; both are range checked and must name a
// real calendar day. Anything else is handed to a generic parser.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return reject(s, "expected three slash separated parts")
		}
		nums, ok := atoiAll(parts)
		if !ok {
			return reject(s, "non numeric component")
		}
		return build(s, nums[2], nums[1], nums[0])
	}

	if y, m, d, ok := splitDash(s); ok {
		nums, _ := atoiAll([]string{y, m, d})
		return build(s, nums[0], nums[1], nums[2])
	}

	if t, ok := parseGeneric(s); ok {
		return t, true
	}
	return reject(s, "unrecognized format")
}

// ParseAmbiguous is Parse with day/month disambiguation for slash values: a component
// above 12 must be the day, otherwise DD/MM is assumed.
func ParseAmbiguous(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return Parse(s)
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return reject(s, "expected three slash separated parts")
	}
	nums, ok := atoiAll(parts)
	if !ok {
		return reject(s, "non numeric component")
	}

	first, second, year := nums[0], nums[1], nums[2]
	switch {
	case first > 12:
		return build(s, year, second, first)
	case second > 12:
		return build(s, year, first, second)
	default:
		return build(s, year, second, first)
	}
}

// Elapsed is the absolute distance between two dates.
type Elapsed struct {
	Days      int    `json:"days"`
	Humanized string `json:"humanized"`
}

// ElapsedBetween measures whole calendar days between from and to, in either order.
func ElapsedBetween(from, to time.Time) Elapsed {
	from = truncateDay(from)
	to = truncateDay(to)
	days := int(math.Round(math.Abs(to.Sub(from).Hours()) / 24))
	return Elapsed{Days: days, Humanized: Humanize(days)}
}

// ElapsedString parses both values with ParseAmbiguous and measures between them.
func ElapsedString(from, to string) (Elapsed, bool) {
	f, ok := ParseAmbiguous(from)
	if !ok {
		return Elapsed{}, false
	}
	t, ok := ParseAmbiguous(to)
	if !ok {
		return Elapsed{}, false
	}
	return ElapsedBetween(f, t), true
}

// Humanize buckets a day count: days under a month, months (30 days) and leftover days
// under a year, years (365 days) and leftover months beyond.
func Humanize(days int) string {
	switch {
	case days < 30:
		return plural(days, "day")
	case days < 365:
		out := plural(days/30, "month")
		if rem := days % 30; rem > 0 {
			out += " " + plural(rem, "day")
		}
		return out
	default:
		out := plural(days/365, "year")
		if months := (days % 365) / 30; months > 0 {
			out += " " + plural(months, "month")
		}
		return out
	}
}

// Today returns now's calendar date in storage form.
func Today(now time.Time) string {
	return now.Format(StorageLayout)
}

func build(raw string, year, month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return reject(raw, "day out of range")
	}
	if month < 1 || month > 12 {
		return reject(raw, "month out of range")
	}
	if year < minYear || year > maxYear {
		return reject(raw, "year out of range")
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return reject(raw, "day does not exist in month")
	}
	return t, true
}

func reject(raw, reason string) (time.Time, bool) {
	zap.L().Warn("unable to parse date", zap.String("date", raw), zap.String("reason", reason))
	return time.Time{}, false
}

func parseGeneric(s string) (time.Time, bool) {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), true
		}
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return time.Time{}, false
	}
	return truncateDay(t), true
}

// splitDash recognises YYYY-MM-DD with purely numeric parts.
func splitDash(s string) (y, m, d string, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || !allDigits(parts...) {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func atoiAll(parts []string) ([]int, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

func allDigits(parts ...string) bool {
	for _, p := range parts {
		if p == "" {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
