package notify

import (
	"testing"
	"time"

	"github.com/llehouerou/sona/internal/toast"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency values = %d/%d/%d, want 0/1/2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestFromToast(t *testing.T) {
	tests := []struct {
		kind    toast.Kind
		title   string
		urgency Urgency
	}{
		{toast.KindError, "Error", UrgencyCritical},
		{toast.KindWarning, "Warning", UrgencyNormal},
		{toast.KindInfo, "Info", UrgencyLow},
		{toast.KindSuccess, "Success", UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r := toast.NewRecord(1, tt.kind, "body text", time.Now())
			n, ok := FromToast(r, 3*time.Second)
			if !ok {
				t.Fatal("FromToast ok = false")
			}
			if n.Title != tt.title {
				t.Errorf("Title = %q, want %q", n.Title, tt.title)
			}
			if n.Urgency != tt.urgency {
				t.Errorf("Urgency = %d, want %d", n.Urgency, tt.urgency)
			}
			if n.Body != "body text" {
				t.Errorf("Body = %q", n.Body)
			}
			if n.Timeout != 3000 {
				t.Errorf("Timeout = %d, want 3000", n.Timeout)
			}
			if n.Icon == "" {
				t.Error("Icon should be set")
			}
		})
	}
}

func TestFromToast_UnrecognizedKind(t *testing.T) {
	r := toast.NewRecord(1, toast.Kind("debug"), "x", time.Now())
	if _, ok := FromToast(r, time.Second); ok {
		t.Error("FromToast(debug) ok = true, want false")
	}
}
