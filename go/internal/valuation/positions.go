package valuation

import "strings"

// ParsePositions splits a raw comma-separated eligibility string into an
// ordered position list. Entries are trimmed; empties are dropped.
func ParsePositions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		pos := strings.TrimSpace(part)
		if pos != "" {
			out = append(out, pos)
		}
	}
	return out
}

// PrimaryPosition returns the first eligible position with outfield
// sub-positions collapsed to the single OF label.
func PrimaryPosition(positions []string) string {
	if len(positions) == 0 {
		return ""
	}
	return CollapseOutfield(positions[0])
}

// CollapseOutfield maps LF, CF, and RF to OF; other positions pass
// through unchanged.
func CollapseOutfield(pos string) string {
	switch pos {
	case "LF", "CF", "RF":
		return "OF"
	default:
		return pos
	}
}
