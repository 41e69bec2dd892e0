package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedImage(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.JPG", true},
		{"photo.PNG", true},
		{"photo.exe", false},
		{"photo.EXE", false},
		{"photo.gif", false},
		{"photo", false},
		{"", false},
	}
	for _, c := range cases {
		if got := AllowedImage(c.name); got != c.ok {
			t.Errorf("AllowedImage(%q) = %v, want %v", c.name, got, c.ok)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{`..\..\win\evil.jpg`, "evil.jpg"},
		{"my photo (1).jpeg", "my_photo__1_.jpeg"},
		{"...", ""},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDiskStoreCreatesDirAndSaves(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "img", "nested")
	store := NewDiskStore(dir)

	ref, err := store.Save("photo.png", strings.NewReader("pixels"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ref != "photo.png" {
		t.Fatalf("reference = %q, want photo.png", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "pixels" {
		t.Fatalf("content = %q", data)
	}

	// Saving again must be idempotent with respect to the directory.
	if _, err := store.Save("photo2.jpg", strings.NewReader("x")); err != nil {
		t.Fatalf("second save: %v", err)
	}
}
