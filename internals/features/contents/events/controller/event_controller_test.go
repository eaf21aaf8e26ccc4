package controller

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/events/model"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func newEventTestApp(t *testing.T) (*fiber.App, *gorm.DB, *imgstore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.EventModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store, err := imgstore.NewStore(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	app := fiber.New()
	ctrl := NewEventController(db, store)
	app.Put("/api/admin/events/:id", ctrl.UpdateEvent)
	app.Delete("/api/admin/events/:id", ctrl.DeleteEvent)
	return app, db, store
}

func putJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func waitRemoved(t *testing.T, store *imgstore.Store, name string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, errP := os.Stat(filepath.Join(store.PrimaryDir, name))
		_, errM := os.Stat(filepath.Join(store.MirrorDir, name))
		if os.IsNotExist(errP) && os.IsNotExist(errM) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("%s still present in store after update", name)
}

func TestUpdateEventReplacingImageDeletesOldFile(t *testing.T) {
	app, db, store := newEventTestApp(t)

	oldRef, err := store.SaveBytes("old-banner.png", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	event := model.EventModel{Name: "Caber Toss", Image: oldRef}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if code := putJSON(t, app, "/api/admin/events/1", `{"image":"/images/new-banner.png"}`); code != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	waitRemoved(t, store, "old-banner.png")

	var stored model.EventModel
	if err := db.First(&stored, "id = ?", event.ID).Error; err != nil {
		t.Fatalf("reload event: %v", err)
	}
	if stored.Image != "/images/new-banner.png" {
		t.Errorf("Image = %q", stored.Image)
	}
}

func TestUpdateEventSamePathKeepsFile(t *testing.T) {
	app, db, store := newEventTestApp(t)

	ref, err := store.SaveBytes("keep-banner.png", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if err := db.Create(&model.EventModel{Name: "Tug O' War", Image: ref}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	// Resubmitting the current path (and patching unrelated fields) must
	// not schedule any deletion.
	if code := putJSON(t, app, "/api/admin/events/1", `{"image":"/images/keep-banner.png","location":"South Field"}`); code != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	time.Sleep(150 * time.Millisecond)
	if _, err := os.Stat(filepath.Join(store.PrimaryDir, "keep-banner.png")); err != nil {
		t.Errorf("primary copy gone after same-path update: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.MirrorDir, "keep-banner.png")); err != nil {
		t.Errorf("mirror copy gone after same-path update: %v", err)
	}
}

func TestUpdateEventWithoutImageFieldKeepsFile(t *testing.T) {
	app, db, store := newEventTestApp(t)

	ref, err := store.SaveBytes("untouched.png", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if err := db.Create(&model.EventModel{Name: "Hammer Throw", Image: ref}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if code := putJSON(t, app, "/api/admin/events/1", `{"description":"New copy"}`); code != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	time.Sleep(150 * time.Millisecond)
	if _, err := os.Stat(filepath.Join(store.PrimaryDir, "untouched.png")); err != nil {
		t.Errorf("image deleted by an update that omitted it: %v", err)
	}
}

func TestDeleteEventRemovesImage(t *testing.T) {
	app, db, store := newEventTestApp(t)

	ref, err := store.SaveBytes("doomed.png", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if err := db.Create(&model.EventModel{Name: "Highland Dancing", Image: ref}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/events/1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	waitRemoved(t, store, "doomed.png")

	var count int64
	db.Model(&model.EventModel{}).Count(&count)
	if count != 0 {
		t.Errorf("event row still present")
	}
}
