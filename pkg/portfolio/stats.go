package portfolio

import (
	"strings"
)

// SectionStats summarizes the size of one generated section.
type SectionStats struct {
	Section    Section
	Characters int
	Words      int
}

// Stats computes character and word counts for every section that
// generated successfully. Failed sections are excluded: the failure text
// still appears in the emitted page, but not in the summary.
func Stats(results []Result) (stats []SectionStats) {
	stats = make([]SectionStats, 0, len(results))
	for _, result := range results {
		if result.Failed() {
			continue
		}
		stats = append(stats, SectionStats{
			Section:    result.Section,
			Characters: len(result.Content),
			Words:      len(strings.Fields(result.Content)),
		})
	}
	return stats
}
