package util

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"notes.txt", "notes.txt"},
		{"my notes.txt", "my_notes.txt"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system.ini`, "system.ini"},
		{".hidden", "hidden"},
		{"...", ""},
		{"", ""},
		{"weird$chars%.txt", "weird_chars_.txt"},
		{"UPPER-lower_0.9.txt", "UPPER-lower_0.9.txt"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
