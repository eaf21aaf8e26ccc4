package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestSaveBytesWritesBothDirs(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.SaveBytes("pic.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if ref != "/images/pic.png" {
		t.Errorf("ref = %q, want /images/pic.png", ref)
	}

	for _, dir := range []string{store.PrimaryDir, store.MirrorDir} {
		data, err := os.ReadFile(filepath.Join(dir, "pic.png"))
		if err != nil {
			t.Fatalf("read from %s: %v", dir, err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("content in %s = %q", dir, data)
		}
	}
}

func TestSaveBytesSurvivesMirrorFailure(t *testing.T) {
	store := &Store{
		PrimaryDir: t.TempDir(),
		MirrorDir:  filepath.Join(t.TempDir(), "missing", "deeper"),
	}

	ref, err := store.SaveBytes("pic.jpg", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if ref != "/images/pic.jpg" {
		t.Errorf("ref = %q", ref)
	}
	if _, err := os.Stat(filepath.Join(store.PrimaryDir, "pic.jpg")); err != nil {
		t.Errorf("primary copy missing: %v", err)
	}
}

func TestDeleteRemovesBothCopies(t *testing.T) {
	store := newTestStore(t)
	ref, err := store.SaveBytes("gone.webp", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}

	store.Delete(ref)

	for _, dir := range []string{store.PrimaryDir, store.MirrorDir} {
		if _, err := os.Stat(filepath.Join(dir, "gone.webp")); !os.IsNotExist(err) {
			t.Errorf("file still present in %s", dir)
		}
	}
}

func TestDeleteIgnoresMissingAndUnmanaged(t *testing.T) {
	store := newTestStore(t)

	// Neither call may panic or touch anything outside the store dirs.
	store.Delete("/images/never-existed.png")
	store.Delete("https://cdn.example.com/images/external.png")
	store.Delete("")
}

func TestIsManagedRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"/images/a.png", true},
		{"/images/1700000000-ab12cd34.webp", true},
		{"", false},
		{"plain.png", false},
		{"http://cdn.example.com/images/a.png", false},
		{"https://cdn.example.com/images/a.png", false},
	}
	for _, tt := range tests {
		if got := IsManagedRef(tt.ref); got != tt.want {
			t.Errorf("IsManagedRef(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("Holiday Photo.JPG")
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("extension not lowercased: %q", name)
	}
	if name == GenerateFilename("Holiday Photo.JPG") {
		t.Error("two generated names collided")
	}
}
