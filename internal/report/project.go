package report

// Resolution classifies the outcome of a project-name lookup.
type Resolution int

const (
	Resolved Resolution = iota
	NotFound
	AccessDenied
	Unknown
)

// ProjectName is the result of resolving a project ID. Name is only set for
// Resolved; the other variants render a fixed fallback label.
type ProjectName struct {
	Resolution Resolution `json:"resolution"`
	Name       string     `json:"name,omitempty"`
}

func ResolvedProject(name string) ProjectName {
	return ProjectName{Resolution: Resolved, Name: name}
}

func (p ProjectName) IsResolved() bool {
	return p.Resolution == Resolved
}

// Display returns the human-readable label used in tables, charts and counts.
func (p ProjectName) Display() string {
	switch p.Resolution {
	case Resolved:
		return p.Name
	case NotFound:
		return "Project not found or private"
	case AccessDenied:
		return "Access denied"
	default:
		return "Unknown"
	}
}
