package domain

import (
	"fmt"
	"strconv"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectFinished ProjectStatus = "finished"
)

// ValidProjectStatuses is the canonical set of accepted status strings.
var ValidProjectStatuses = map[string]bool{
	"active": true, "finished": true,
}

// ParseProjectStatus converts a list kind such as "active" into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	if !ValidProjectStatuses[s] {
		return "", fmt.Errorf("unknown project status %q (want active or finished)", s)
	}
	return ProjectStatus(s), nil
}

func itoa(n int) string { return strconv.Itoa(n) }
