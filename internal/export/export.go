// Package export turns a password into a downloadable text file.
package export

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultName is used when the caller supplies a blank filename.
	DefaultName = "password"

	ContentType = "text/plain; charset=utf-8"

	extension = ".txt"
)

// File is a password export artifact.
type File struct {
	Name    string
	Content []byte
}

// New builds the export artifact for password. The content is the password
// itself with no trailing newline. ok is false when password is empty, in
// which case nothing should be produced.
func New(password, filename string) (f File, ok bool) {
	if password == "" {
		return File{}, false
	}

	name := strings.TrimSpace(filename)
	if name == "" {
		name = DefaultName
	}

	return File{
		Name:    name + extension,
		Content: []byte(password),
	}, true
}

// WriteTo streams the file content to w.
func (f File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Content)
	return int64(n), err
}

// ContentDisposition returns the header value that makes browsers save the file.
// Non-ASCII names use the RFC 2231 filename* form.
func (f File) ContentDisposition() string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": f.Name})
}

// Save writes the file into dir and returns the full path.
// Only the base of f.Name is used, so a filename cannot escape dir.
func (f File) Save(dir string) (string, error) {
	path := filepath.Join(dir, filepath.Base(f.Name))
	if err := os.WriteFile(path, f.Content, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
