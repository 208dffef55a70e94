package seed

import (
	_ "embed"
	"fmt"

	"inkwell/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed categories.yml
var categoriesYAML []byte

// BuiltInCategory is a permanent category every deployment carries.
type BuiltInCategory struct {
	Name string `yaml:"name"`
}

// BuiltInCategories returns the category set from the embedded manifest.
func BuiltInCategories() ([]BuiltInCategory, error) {
	var manifest struct {
		Categories []BuiltInCategory `yaml:"categories"`
	}
	if err := yaml.Unmarshal(categoriesYAML, &manifest); err != nil {
		return nil, fmt.Errorf("parse categories manifest: %w", err)
	}
	if len(manifest.Categories) == 0 {
		return nil, fmt.Errorf("categories manifest is empty")
	}
	return manifest.Categories, nil
}

// Categories seeds the built-in categories. Re-running is a no-op for
// categories that already exist.
func Categories(db *gorm.DB) error {
	items, err := BuiltInCategories()
	if err != nil {
		return err
	}

	for _, item := range items {
		category := models.Category{Name: item.Name}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error
		if err != nil {
			return fmt.Errorf("seed category %q: %w", item.Name, err)
		}
	}
	return nil
}
