package seed

import (
	"testing"

	"inkwell/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCategories_Idempotent(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.Category{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := Categories(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Categories(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	builtIns, err := BuiltInCategories()
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if count != int64(len(builtIns)) {
		t.Fatalf("expected %d categories, got %d", len(builtIns), count)
	}

	for _, item := range builtIns {
		var c models.Category
		if err := db.Where("name = ?", item.Name).First(&c).Error; err != nil {
			t.Fatalf("missing category %s: %v", item.Name, err)
		}
	}
}

func TestBuiltInCategories_ManifestParses(t *testing.T) {
	t.Parallel()

	items, err := BuiltInCategories()
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected at least one built-in category")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Name == "" {
			t.Fatal("category with empty name in manifest")
		}
		if _, dup := seen[item.Name]; dup {
			t.Fatalf("duplicate category %q in manifest", item.Name)
		}
		seen[item.Name] = struct{}{}
	}
}
