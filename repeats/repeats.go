package repeats

import (
	"strings"
)

// Length reports the number of repeat units between the left and right flank of seq.
// Only the first occurrence of leftFlank is used as an anchor, and only the first occurrence
// of rightFlank after it. The count is accepted only if leftFlank + n*unit + rightFlank is
// present in seq as one contiguous block. found is false when any step fails.
func Length(seq, leftFlank, rightFlank, unit string) (n int, found bool) {
	if unit == "" {
		return 0, false
	}

	leftIdx := strings.Index(seq, leftFlank)
	if leftIdx == -1 {
		return 0, false
	}
	remainder := seq[leftIdx+len(leftFlank):]

	rightIdx := strings.Index(remainder, rightFlank)
	if rightIdx == -1 {
		return 0, false
	}

	n = strings.Count(remainder[:rightIdx], unit)
	if !strings.Contains(seq, perfectRepeat(leftFlank, rightFlank, unit, n)) {
		return 0, false
	}
	return n, true
}

// perfectRepeat builds the flanked sequence expected for n uninterrupted copies of unit.
func perfectRepeat(leftFlank, rightFlank, unit string, n int) string {
	sb := new(strings.Builder)
	sb.Grow(len(leftFlank) + len(unit)*n + len(rightFlank))
	sb.WriteString(leftFlank)
	for i := 0; i < n; i++ {
		sb.WriteString(unit)
	}
	sb.WriteString(rightFlank)
	return sb.String()
}
