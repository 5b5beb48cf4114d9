package analytics

import (
	"time"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// hoursPerBlock divides the day into the six fixed heatmap columns:
// [0,4) late_night, [4,8) early_morning, [8,12) morning, [12,16) afternoon,
// [16,20) evening, [20,24) night.
const hoursPerBlock = 4

// buildHeatmap fills the Mon-Sun by time-block grid. Only timestamped
// messages land in a cell; undated messages are excluded here even though the
// weekly timeline gives them a synthetic fallback.
func buildHeatmap(messages []domain.Message) Heatmap {
	var grid Heatmap

	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}

		day := mondayIndex(m.Timestamp.Weekday())
		block := m.Timestamp.Hour() / hoursPerBlock

		grid[day][block]++
	}

	return grid
}

// mondayIndex shifts Go's Sunday-first weekday to a Monday-first row index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
