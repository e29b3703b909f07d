package format

import "testing"

func TestSplitPath(t *testing.T) {
	tests := []struct {
		cwd    string
		parent string
		leaf   string
		ok     bool
	}{
		{"/home/user/project", "/home/user", "project", true},
		{"project", "", "project", true},
		{"/project", "", "project", true},
		{"/home/user/", "/home", "user", true},
		{"a/b", "a", "b", true},
		{"/", "", "", false},
		{"", "", "", false},
		{"..", "", "", false},
		{"foo/..", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.cwd, func(t *testing.T) {
			parent, leaf, ok := SplitPath(tt.cwd)
			if ok != tt.ok || parent != tt.parent || leaf != tt.leaf {
				t.Errorf("SplitPath(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.cwd, parent, leaf, ok, tt.parent, tt.leaf, tt.ok)
			}
		})
	}
}

func TestPercentTruncates(t *testing.T) {
	tests := []struct {
		used, limit, want int
	}{
		{0, 200000, 0},
		{99999, 200000, 49},
		{100000, 200000, 50},
		{139999, 200000, 69},
		{200000, 200000, 100},
		{300000, 200000, 150},
	}
	for _, tt := range tests {
		if got := Percent(tt.used, tt.limit); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.used, tt.limit, got, tt.want)
		}
	}
}
