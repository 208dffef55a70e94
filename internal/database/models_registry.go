package database

import "inkwell/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Category{},
		&models.PostCategory{},
		&models.Comment{},
		&models.Like{},
		&models.ReadingList{},
		&models.ReadingListPost{},
		&models.Report{},
		&models.Notification{},
		&models.Feedback{},
	}
}
