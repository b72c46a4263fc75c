package domain

import "testing"

func TestWorse(t *testing.T) {
	tests := []struct {
		a, b, want Status
	}{
		{StatusOK, StatusOK, StatusOK},
		{StatusOK, StatusWarning, StatusWarning},
		{StatusWarning, StatusCritical, StatusCritical},
		{StatusCritical, StatusOK, StatusCritical},
		// Unknown outranks OK but never an actual failure verdict.
		{StatusOK, StatusUnknown, StatusUnknown},
		{StatusUnknown, StatusWarning, StatusWarning},
		{StatusUnknown, StatusCritical, StatusCritical},
	}
	for _, tt := range tests {
		if got := tt.a.Worse(tt.b); got != tt.want {
			t.Errorf("Worse(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestReportOverall(t *testing.T) {
	r := Report{Results: []CheckResult{
		{Status: StatusOK},
		{Status: StatusWarning},
		{Status: StatusOK},
	}}
	if r.Overall() != StatusWarning {
		t.Errorf("expected WARNING overall, got %v", r.Overall())
	}

	if (Report{}).Overall() != StatusOK {
		t.Error("an empty report is OK")
	}
}
