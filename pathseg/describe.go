package pathseg

// PathStats summarizes one stroke for reporting: sample count, endpoints,
// and traversed length (sum of consecutive distances).
type PathStats struct {
	Points int
	Start  Point
	End    Point
	Length float64
}

// Describe computes per-stroke statistics for a Collection, in order.
// Empty Paths (which Segment never produces) yield a zero PathStats.
//
// Complexity: O(total samples) time, O(len(c)) memory.
func Describe(c Collection) []PathStats {
	stats := make([]PathStats, len(c))
	for i, p := range c {
		if len(p) == 0 {
			continue
		}
		s := PathStats{
			Points: len(p),
			Start:  p[0],
			End:    p[len(p)-1],
		}
		for j := 1; j < len(p); j++ {
			s.Length += dist(p[j-1], p[j])
		}
		stats[i] = s
	}

	return stats
}
