package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// NextQueueNumber computes the next per-doctor, per-day queue label from the
// numbers already issued that day: strip non-digits, take the max suffix,
// increment, zero-pad to three digits behind the "A" prefix. First arrival of
// the day gets A001. No rollover past 999; %03d just keeps widening.
func NextQueueNumber(existing []string) string {
	max := 0
	for _, q := range existing {
		if n := numericSuffix(q); n > max {
			max = n
		}
	}
	return fmt.Sprintf("A%03d", max+1)
}

func numericSuffix(q string) int {
	var b strings.Builder
	for _, r := range q {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
