package prefs

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "github.com/oticaisis/storefront/model/entity"
)

func testRepo(t *testing.T) *PrefsRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo, err := NewPrefsRepository(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func TestPrefs_SetGet(t *testing.T) {
	repo := testRepo(t)

	if err := repo.Set(entity.PrefCartID, "gid://cart/abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := repo.Get(entity.PrefCartID)
	if !ok || got != "gid://cart/abc" {
		t.Errorf("Get = %q, %v; want gid://cart/abc, true", got, ok)
	}
}

func TestPrefs_SetOverwrites(t *testing.T) {
	repo := testRepo(t)

	repo.Set(entity.PrefCartID, "old")
	if err := repo.Set(entity.PrefCartID, "new"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := repo.Get(entity.PrefCartID)
	if got != "new" {
		t.Errorf("Get = %q, want new", got)
	}
}

func TestPrefs_GetMissing(t *testing.T) {
	repo := testRepo(t)

	if _, ok := repo.Get("nope"); ok {
		t.Error("Get on missing key: ok = true, want false")
	}
}

func TestPrefs_DeleteMissingIsNoop(t *testing.T) {
	repo := testRepo(t)

	if err := repo.Delete("nope"); err != nil {
		t.Errorf("Delete on missing key: %v", err)
	}
}

func TestPrefs_Delete(t *testing.T) {
	repo := testRepo(t)

	repo.Set(entity.PrefNewsletterSubscribed, "true")
	if err := repo.Delete(entity.PrefNewsletterSubscribed); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.Get(entity.PrefNewsletterSubscribed); ok {
		t.Error("key survived Delete")
	}
}
