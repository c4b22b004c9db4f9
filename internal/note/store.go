// Package note implements plain-text note storage on the local filesystem
// and its HTTP handlers. Notes are .txt files up to 1MB, stored flat under a
// configured base directory.
package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/skillsenselab/todo-api/internal/util"
)

// MaxNoteSize is the upload limit for a single note.
const MaxNoteSize = 1024 * 1024

var (
	// ErrNotFound is returned for a note name with no stored file.
	ErrNotFound = errors.New("note not found")
	// ErrBadName is returned when sanitizing leaves no usable filename.
	ErrBadName = errors.New("invalid note name")
)

// Store keeps notes as files under an absolute base directory. Names are
// sanitized before every path join, so a stored file can never land outside
// the base directory.
type Store struct {
	basePath string
}

// NewStore creates the base directory if needed and returns the store.
func NewStore(basePath string) (*Store, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("note store: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("note store: create base directory: %w", err)
	}
	return &Store{basePath: abs}, nil
}

// Save validates content and writes it under the sanitized name, returning
// the name the note was stored as.
func (s *Store) Save(name string, content []byte) (string, error) {
	clean, err := s.cleanName(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.basePath, clean), content, 0o640); err != nil {
		return "", fmt.Errorf("note store: write: %w", err)
	}
	return clean, nil
}

// Read returns the content of the named note.
func (s *Store) Read(name string) ([]byte, error) {
	clean, err := s.cleanName(name)
	if err != nil {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.basePath, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("note store: read: %w", err)
	}
	return data, nil
}

// Delete removes the named note.
func (s *Store) Delete(name string) error {
	clean, err := s.cleanName(name)
	if err != nil {
		return ErrNotFound
	}
	if err := os.Remove(filepath.Join(s.basePath, clean)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("note store: delete: %w", err)
	}
	return nil
}

// ValidateContent enforces the note content contract: valid, non-blank UTF-8
// text within the size cap.
func ValidateContent(content []byte) error {
	if len(content) > MaxNoteSize {
		return errors.New("note is too large")
	}
	if !utf8.Valid(content) {
		return errors.New("note must contain valid text")
	}
	if strings.TrimSpace(string(content)) == "" {
		return errors.New("note cannot be empty")
	}
	return nil
}

func (s *Store) cleanName(name string) (string, error) {
	clean := util.SanitizeFilename(name)
	if clean == "" || clean == ".txt" {
		return "", ErrBadName
	}
	return clean, nil
}
