package util

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		def  int64
		want int64
	}{
		{"2MB", 0, 2 * 1024 * 1024},
		{"512KB", 0, 512 * 1024},
		{"1GB", 0, 1024 * 1024 * 1024},
		{"1024", 0, 1024},
		{" 2mb ", 0, 2 * 1024 * 1024},
		{"", 42, 42},
		{"garbage", 42, 42},
		{"MB", 42, 42},
	}
	for _, tc := range cases {
		if got := ParseSize(tc.in, tc.def); got != tc.want {
			t.Errorf("ParseSize(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	cases := []struct {
		in     string
		prefix int
		want   string
	}{
		{"supersecretvalue", 4, "supe***"},
		{"abc", 4, "***"},
		{"", 4, "***"},
		{"abcd", 4, "***"},
	}
	for _, tc := range cases {
		if got := MaskSecret(tc.in, tc.prefix); got != tc.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tc.in, tc.prefix, got, tc.want)
		}
	}
}
