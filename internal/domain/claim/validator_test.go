package claim

import "testing"

func f64(v float64) *float64 { return &v }

func TestValidateRules_Valid(t *testing.T) {
	c := &Claim{HoursWorked: 45, RatePerHour: 10}
	if got := ValidateRules(c); len(got) != 0 {
		t.Fatalf("expected no violations, got %+v", got)
	}
}

func TestValidateRules_MaxHours(t *testing.T) {
	c := &Claim{HoursWorked: 45.5}
	got := ValidateRules(c)
	if len(got) != 1 {
		t.Fatalf("violations = %+v, want exactly one", got)
	}
	if got[0].Message != "Maximum working hours reached" {
		t.Fatalf("message = %q", got[0].Message)
	}
}

func TestValidateRules_MaxOvertime(t *testing.T) {
	c := &Claim{HoursWorked: 10, OvertimeHours: f64(10.5)}
	got := ValidateRules(c)
	if len(got) != 1 {
		t.Fatalf("violations = %+v, want exactly one", got)
	}
	if got[0].Message != "Maximum overtime hours reached." {
		t.Fatalf("message = %q", got[0].Message)
	}
}

func TestValidateRules_OvertimeRuleSkippedWhenAbsent(t *testing.T) {
	// Rule only fires when overtime hours are present.
	c := &Claim{HoursWorked: 10}
	if got := ValidateRules(c); len(got) != 0 {
		t.Fatalf("expected no violations, got %+v", got)
	}
}

func TestValidateRules_BothViolated(t *testing.T) {
	c := &Claim{HoursWorked: 100, OvertimeHours: f64(20)}
	if got := ValidateRules(c); len(got) != 2 {
		t.Fatalf("violations = %+v, want two", got)
	}
}

func TestGrossPay_OvertimeBothOrNeither(t *testing.T) {
	base := Claim{HoursWorked: 45, RatePerHour: 10}
	if got := base.GrossPay(); got != 450 {
		t.Fatalf("GrossPay = %v, want 450", got)
	}

	withOT := base
	withOT.OvertimeHours = f64(5)
	withOT.OvertimeRate = f64(20)
	if got := withOT.GrossPay(); got != 550 {
		t.Fatalf("GrossPay with overtime = %v, want 550", got)
	}

	// Hours without a rate contribute nothing.
	half := base
	half.OvertimeHours = f64(5)
	if got := half.GrossPay(); got != 450 {
		t.Fatalf("GrossPay with dangling overtime hours = %v, want 450", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Fatalf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus("Paid") {
		t.Fatal(`ValidStatus("Paid") = true, want false`)
	}
	if ValidStatus("") {
		t.Fatal(`ValidStatus("") = true, want false`)
	}
}
