package domain

import "time"

// Project is a single submitted item. Fields are set once by NewProject and
// never change afterwards; the store hands out copies, not pointers.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      ProjectStatus
	CreatedAt   time.Time
}

// NewProject builds an Active project. The caller supplies a fresh id.
func NewProject(id, title, description string, people int, createdAt time.Time) Project {
	return Project{
		ID:          id,
		Title:       title,
		Description: description,
		People:      people,
		Status:      ProjectActive,
		CreatedAt:   createdAt,
	}
}

// DisplayID returns the first 8 characters of the ID for compact display.
func (p Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// PeopleLabel returns "1 person" or "N persons".
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person"
	}
	return itoa(p.People) + " persons"
}
