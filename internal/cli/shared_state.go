package cli

import "github.com/alexanderramin/projboard/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Counts per status, kept current by a store listener.
	Active   int
	Finished int

	// Terminal dimensions
	Width  int
	Height int
}

// observe records per-status counts from a store snapshot.
func (s *SharedState) observe(projects []domain.Project) {
	s.Active, s.Finished = 0, 0
	for _, p := range projects {
		switch p.Status {
		case domain.ProjectActive:
			s.Active++
		case domain.ProjectFinished:
			s.Finished++
		}
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + message + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
