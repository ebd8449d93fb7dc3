package models

type InsightPriority int

const (
	PriorityLow    InsightPriority = 1
	PriorityMedium InsightPriority = 2
	PriorityHigh   InsightPriority = 3
)

func (p InsightPriority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Color is the accent used when a priority badge is rendered.
func (p InsightPriority) Color() string {
	switch p {
	case PriorityHigh:
		return "red"
	case PriorityMedium:
		return "orange"
	default:
		return "blue"
	}
}

// HealthInsight is a generated observation. It is never persisted.
type HealthInsight struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Priority    InsightPriority `json:"priority"`
	ActionTitle string          `json:"action_title,omitempty"`
	Value       string          `json:"value,omitempty"`
}
