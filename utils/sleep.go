package utils

import (
	"strconv"
	"strings"
)

// ComputeSleepMinutes turns bed/wake wall-clock times ("HH:MM") into
// elapsed minutes. An explicit user-supplied value always wins over the
// derived one. A wake time at or before the bed time is read as
// crossing midnight. Returns nil when nothing can be derived; never a
// fabricated zero. No plausibility clamping here.
func ComputeSleepMinutes(bedTime, wakeTime *string, explicit *int) *int {
	if explicit != nil {
		v := *explicit
		return &v
	}
	if bedTime == nil || wakeTime == nil {
		return nil
	}
	bed, ok := clockToMinutes(*bedTime)
	if !ok {
		return nil
	}
	wake, ok := clockToMinutes(*wakeTime)
	if !ok {
		return nil
	}
	if wake <= bed {
		wake += 24 * 60
	}
	m := wake - bed
	return &m
}

func clockToMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
