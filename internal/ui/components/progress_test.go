package components

import (
	"strings"
	"testing"
)

func TestPercentBar(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, "0%"},
		{30, "30%"},
		{67, "67%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		view := NewPercentBar("Assessment Progress", tt.pct, 60).View()
		if !strings.Contains(view, tt.want) {
			t.Errorf("NewPercentBar(%d) view missing %q", tt.pct, tt.want)
		}
		if !strings.Contains(view, "Assessment Progress") {
			t.Errorf("NewPercentBar(%d) view missing label", tt.pct)
		}
	}
}
