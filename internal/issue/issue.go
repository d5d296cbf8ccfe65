package issue

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// State is the lifecycle state of an issue.
type State string

// Known issue states.
const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// UnmarshalJSON normalizes the state case-insensitively.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding issue state: %w", err)
	}
	*s = State(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

// Issue is one tracked work item.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	State     State      `json:"state"`
	Labels    []Label    `json:"labels"`
	Milestone *Milestone `json:"milestone"`
	Assignees []Assignee `json:"assignees"`
}

// Label is a tag attached to an issue. Color is a 6-hex-digit string
// without the leading '#'.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Milestone groups issues under a shared target.
type Milestone struct {
	Title string `json:"title"`
	DueOn string `json:"dueOn,omitempty"`
}

// DueDate returns the date portion (YYYY-MM-DD) of DueOn, or "" when the
// milestone has no due date.
func (m *Milestone) DueDate() string {
	if m == nil || len(m.DueOn) < 10 {
		return ""
	}
	return m.DueOn[:10]
}

// Assignee is a user an issue is assigned to.
type Assignee struct {
	Login string `json:"login,omitempty"`
	Name  string `json:"name"`
}

// DisplayName returns the name shown in reports.
func (a Assignee) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Login
}

// Handle returns the account handle used to build profile URLs.
func (a Assignee) Handle() string {
	if a.Login != "" {
		return a.Login
	}
	return a.Name
}

// Decode reads a JSON array of issues.
func Decode(r io.Reader) ([]Issue, error) {
	var issues []Issue
	if err := json.NewDecoder(r).Decode(&issues); err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}
	return issues, nil
}

// Parse decodes a JSON array of issues held in memory.
func Parse(data []byte) ([]Issue, error) {
	var issues []Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}
	return issues, nil
}
