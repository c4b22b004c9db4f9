package note

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestStore_SaveReadDelete_Roundtrip(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("hello.txt", []byte("hello world"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "hello.txt" {
		t.Errorf("expected hello.txt, got %q", name)
	}

	content, err := s.Read("hello.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(content, []byte("hello world")) {
		t.Errorf("unexpected content: %q", content)
	}

	if err := s.Delete("hello.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Read("hello.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete("hello.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_Save_TraversalNamesStayInsideBase(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("../../etc/passwd.txt", []byte("attack"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Errorf("sanitized name must not traverse: %q", name)
	}
	if _, err := os.Stat(filepath.Join(s.basePath, name)); err != nil {
		t.Errorf("expected file inside the base directory: %v", err)
	}
	// Nothing escaped above the base directory.
	if _, err := os.Stat(filepath.Join(s.basePath, "..", "etc")); err == nil {
		t.Error("file must not land outside the base directory")
	}
}

func TestStore_Save_UnusableName(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"", "...", "./."} {
		if _, err := s.Save(name, []byte("x")); !errors.Is(err, ErrBadName) {
			t.Errorf("name %q: expected ErrBadName, got %v", name, err)
		}
	}
}

func TestStore_Read_MissingNote(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Read("ghost.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateContent(t *testing.T) {
	cases := []struct {
		name    string
		content []byte
		wantErr string
	}{
		{"valid", []byte("note text"), ""},
		{"empty", []byte(""), "note cannot be empty"},
		{"whitespace only", []byte("  \n\t "), "note cannot be empty"},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}, "note must contain valid text"},
		{"too large", bytes.Repeat([]byte("a"), MaxNoteSize+1), "note is too large"},
		{"exactly max", bytes.Repeat([]byte("a"), MaxNoteSize), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContent(tc.content)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %v", tc.wantErr, err)
			}
		})
	}
}
