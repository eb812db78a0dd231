package task

import "testing"

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "pending", status: StatusPending, want: true},
		{name: "in_progress", status: StatusInProgress, want: true},
		{name: "completed", status: StatusCompleted, want: true},
		{name: "unknown value", status: Status("archived"), want: false},
		{name: "empty", status: Status(""), want: false},
		{name: "case sensitive", status: Status("Pending"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
