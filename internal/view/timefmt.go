package view

import (
	"strconv"
	"strings"
	"time"
)

// FormatLocalTime reads a stored "YYYY-MM-DDTHH:MM" (or space separated)
// timestamp as UTC and renders it shifted by offset as "YYYY-MM-DD HH:MM".
// Input that cannot be parsed is returned unchanged.
func FormatLocalTime(stamp string, offset time.Duration) string {
	if stamp == "" {
		return ""
	}
	parts := strings.FieldsFunc(stamp, func(r rune) bool { return r == 'T' || r == ' ' })
	if len(parts) < 2 {
		return stamp
	}

	date := strings.Split(parts[0], "-")
	clock := strings.Split(parts[1], ":")
	if len(date) < 3 || len(clock) < 2 {
		return stamp
	}

	var nums [5]int
	for i, s := range []string{date[0], date[1], date[2], clock[0], clock[1]} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return stamp
		}
		nums[i] = n
	}

	t := time.Date(nums[0], time.Month(nums[1]), nums[2], nums[3], nums[4], 0, 0, time.UTC)
	return t.Add(offset).Format("2006-01-02 15:04")
}
