package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the schema. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey and can be
// mapped onto the error taxonomy.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &TaskModel{}); err != nil {
		return nil, err
	}

	return db, nil
}
