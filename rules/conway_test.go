package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"alive 0 dies", 0, true, false},
		{"alive 1 dies", 1, true, false},
		{"alive 2 survives", 2, true, true},
		{"alive 3 survives", 3, true, true},
		{"alive 4 dies", 4, true, false},
		{"alive 5 dies", 5, true, false},
		{"alive 8 dies", 8, true, false},
		{"dead 0 stays dead", 0, false, false},
		{"dead 2 stays dead", 2, false, false},
		{"dead 3 is born", 3, false, true},
		{"dead 4 stays dead", 4, false, false},
		{"dead 8 stays dead", 8, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

func TestApplyConwayRulesExhaustive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := ApplyConwayRules(n, true), n == 2 || n == 3; got != want {
			t.Errorf("alive with %d neighbors: got %v, want %v", n, got, want)
		}
		if got, want := ApplyConwayRules(n, false), n == 3; got != want {
			t.Errorf("dead with %d neighbors: got %v, want %v", n, got, want)
		}
	}
}
