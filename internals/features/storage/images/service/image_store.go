package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"paisleygames_backend/internals/configs"
)

// Store persists uploaded images into the build-output directory and mirrors
// them into the dev-serve directory so both environments resolve the same
// /images/<name> reference. The primary copy is authoritative: a mirror
// failure is logged, never returned.
type Store struct {
	PrimaryDir string
	MirrorDir  string
}

func NewStore(primaryDir, mirrorDir string) (*Store, error) {
	for _, dir := range []string{primaryDir, mirrorDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &Store{PrimaryDir: primaryDir, MirrorDir: mirrorDir}, nil
}

func NewStoreFromEnv() (*Store, error) {
	return NewStore(configs.UploadDirDist, configs.UploadDirPublic)
}

// GenerateFilename builds a collision-resistant name: unix-millis plus a
// short random suffix, original extension preserved.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// Save writes the uploaded file under a generated name and returns the
// canonical /images/... reference.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return s.SaveBytes(GenerateFilename(fh.Filename), data)
}

// SaveBytes writes already-prepared image bytes under the given name.
func (s *Store) SaveBytes(name string, data []byte) (string, error) {
	primary := filepath.Join(s.PrimaryDir, name)
	if err := os.WriteFile(primary, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", primary, err)
	}

	mirror := filepath.Join(s.MirrorDir, name)
	if err := os.WriteFile(mirror, data, 0o644); err != nil {
		log.Printf("[WARN] mirror copy to %s failed: %v", mirror, err)
	}
	return s.RefPath(name), nil
}

// RefPath converts a stored filename into the reference kept in the DB.
func (s *Store) RefPath(name string) string {
	return "/images/" + name
}

// IsManagedRef reports whether a stored image reference points at a file
// this store owns. External absolute URLs are never ours.
func IsManagedRef(ref string) bool {
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return false
	}
	return strings.Contains(ref, "/images/")
}

// Delete removes the referenced file from both directories. Unmanaged
// references and already-missing files are no-ops.
func (s *Store) Delete(ref string) {
	if !IsManagedRef(ref) {
		return
	}
	name := filepath.Base(ref)
	for _, dir := range []string{s.PrimaryDir, s.MirrorDir} {
		p := filepath.Join(dir, name)
		if err := os.Remove(p); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("[WARN] delete %s failed: %v", p, err)
			}
			continue
		}
		log.Printf("Deleted: %s", p)
	}
}
