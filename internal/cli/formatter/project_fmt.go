package formatter

import (
	"strconv"
	"time"

	"github.com/alexanderramin/projboard/internal/domain"
)

// FormatProjectTable renders projects as an aligned table.
func FormatProjectTable(projects []domain.Project, now time.Time) string {
	if len(projects) == 0 {
		return Dim("No projects.") + "\n"
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			StyleGreen.Render(p.DisplayID()),
			Truncate(p.Title, 32),
			strconv.Itoa(p.People),
			StatusPill(p.Status),
			Dim(HumanTimestampFrom(p.CreatedAt, now)),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "PEOPLE", "STATUS", "CREATED"}, rows)
}
