package claim

const (
	MaxHoursWorked   = 45
	MaxOvertimeHours = 10

	msgMaxHours    = "Maximum working hours reached"
	msgMaxOvertime = "Maximum overtime hours reached."
)

type RuleViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRules checks the two business rules a claim must satisfy:
// hours worked may not exceed 45, and overtime hours — only when
// supplied — may not exceed 10. Pure function; no other field is
// checked here (request-shape validation is the HTTP layer's concern).
func ValidateRules(c *Claim) []RuleViolation {
	var out []RuleViolation
	if c.HoursWorked > MaxHoursWorked {
		out = append(out, RuleViolation{Field: "hours_worked", Message: msgMaxHours})
	}
	if c.OvertimeHours != nil && *c.OvertimeHours > MaxOvertimeHours {
		out = append(out, RuleViolation{Field: "overtime_hours", Message: msgMaxOvertime})
	}
	return out
}
