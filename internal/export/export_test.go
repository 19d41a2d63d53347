package export

import (
	"bytes"
	"mime"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		password string
		filename string
		wantName string
		wantOK   bool
	}{
		{name: "custom filename", password: "s3cret!", filename: "my_secure_password", wantName: "my_secure_password.txt", wantOK: true},
		{name: "blank filename", password: "s3cret!", filename: "", wantName: "password.txt", wantOK: true},
		{name: "whitespace filename", password: "s3cret!", filename: "   ", wantName: "password.txt", wantOK: true},
		{name: "trimmed filename", password: "s3cret!", filename: "  bank ", wantName: "bank.txt", wantOK: true},
		{name: "empty password", password: "", filename: "ignored", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := New(tt.password, tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("New() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if f.Name != "" || f.Content != nil {
					t.Errorf("New() should return a zero File when not ok, got %+v", f)
				}
				return
			}
			if f.Name != tt.wantName {
				t.Errorf("New() name = %q, want %q", f.Name, tt.wantName)
			}
			if string(f.Content) != tt.password {
				t.Errorf("New() content = %q, want %q", f.Content, tt.password)
			}
		})
	}
}

func TestFileWriteToHasNoTrailingNewline(t *testing.T) {
	f, _ := New("Kifaru-Simba-Twiga!", "animals")

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() unexpected error: %v", err)
	}
	if n != int64(len("Kifaru-Simba-Twiga!")) {
		t.Errorf("WriteTo() n = %d", n)
	}
	if got := buf.String(); got != "Kifaru-Simba-Twiga!" {
		t.Errorf("WriteTo() wrote %q", got)
	}
}

func TestFileUTF8Content(t *testing.T) {
	f, _ := New("nenosiri-ñ-€", "")
	if !bytes.Equal(f.Content, []byte("nenosiri-ñ-€")) {
		t.Errorf("content not preserved as UTF-8: %q", f.Content)
	}
}

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "token", filename: "vault", want: `attachment; filename=vault.txt`},
		{name: "space is quoted", filename: "my passwords", want: `attachment; filename="my passwords.txt"`},
		{name: "quote is escaped", filename: `a"b`, want: `attachment; filename="a\"b.txt"`},
		{name: "non-ascii", filename: "nenosiri-ñ", want: `attachment; filename*=utf-8''nenosiri-%C3%B1.txt`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := New("x", tt.filename)
			got := f.ContentDisposition()
			if got != tt.want {
				t.Errorf("ContentDisposition() = %q, want %q", got, tt.want)
			}

			disposition, params, err := mime.ParseMediaType(got)
			if err != nil {
				t.Fatalf("header does not parse: %v", err)
			}
			if disposition != "attachment" || params["filename"] != f.Name {
				t.Errorf("parsed %q %v, want attachment with filename %q", disposition, params, f.Name)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	f, _ := New("abc-123-xyz", "../escape")

	path, err := f.Save(dir)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "escape.txt") {
		t.Errorf("Save() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "abc-123-xyz" {
		t.Errorf("saved content = %q", data)
	}
}
