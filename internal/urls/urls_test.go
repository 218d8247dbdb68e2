package urls

import "testing"

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{Repository, "github.com/muurk/numfield"},
		{"http://example.com/x", "example.com/x"},
		{"github.com/muurk", "github.com/muurk"},
		{"https://", "https://"},
	}

	for _, tt := range tests {
		if got := Display(tt.in); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
