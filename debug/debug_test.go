package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"garbage", false},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("JDOC_DEBUG_TEST", tt.val)
			if got := boolEnv("JDOC_DEBUG_TEST"); got != tt.want {
				t.Errorf("boolEnv(%q) = %v", tt.val, got)
			}
		})
	}
}
