package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*OrgRepo
	*ItemRepo
	*TagRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		OrgRepo:  &OrgRepo{db: db},
		ItemRepo: &ItemRepo{db: db},
		TagRepo:  &TagRepo{db: db},
	}
}
