package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

func TestBuildHeatmapCells(t *testing.T) {
	tests := []struct {
		name      string
		t         time.Time
		wantDay   int
		wantBlock int
	}{
		{name: "monday late night", t: time.Date(2021, 3, 1, 2, 0, 0, 0, time.UTC), wantDay: 0, wantBlock: 0},
		{name: "monday morning boundary", t: time.Date(2021, 3, 1, 8, 0, 0, 0, time.UTC), wantDay: 0, wantBlock: 2},
		{name: "wednesday afternoon", t: time.Date(2021, 3, 3, 15, 59, 0, 0, time.UTC), wantDay: 2, wantBlock: 3},
		{name: "sunday night", t: time.Date(2021, 3, 7, 23, 0, 0, 0, time.UTC), wantDay: 6, wantBlock: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildHeatmap([]domain.Message{msgAt(tt.t, "Asha", "x", 0)})

			require.Equal(t, 1, grid[tt.wantDay][tt.wantBlock])

			total := 0
			for _, row := range grid {
				for _, cell := range row {
					total += cell
				}
			}

			require.Equal(t, 1, total)
		})
	}
}

func TestBuildHeatmapExcludesUndated(t *testing.T) {
	grid := buildHeatmap([]domain.Message{
		msgAt(time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC), "Asha", "dated", 0),
		msgUndated("Asha", "undated", 1),
	})

	total := 0
	for _, row := range grid {
		for _, cell := range row {
			total += cell
		}
	}

	require.Equal(t, 1, total)
}
