package models

type InsightSeverity string

const (
	SeverityPositive InsightSeverity = "positive"
	SeverityInfo     InsightSeverity = "info"
	SeverityWarning  InsightSeverity = "warning"
	SeverityCritical InsightSeverity = "critical"
)

// Insight is a short piece of coaching advice produced by a named rule.
type Insight struct {
	Rule     string          `json:"rule"`
	Severity InsightSeverity `json:"severity"`
	Message  string          `json:"message"`
}
