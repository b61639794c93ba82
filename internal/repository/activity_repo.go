package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
)

// maxEntries caps the activity log to the most recent rows.
const maxEntries = 100

// ActivityRepository provides data access methods for the activity log.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new repository bound to the given DB connection.
func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: database}
}

// Append inserts a log entry, then trims rows beyond the retention cap,
// oldest first. actorID is nil for system actions.
func (r *ActivityRepository) Append(ctx context.Context, actorID *string, actorName, action string) error {
	entry := db.ActivityLog{
		ActorID:   actorID,
		ActorName: actorName,
		Action:    action,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	// MySQL rejects LIMIT inside IN subqueries, hence the derived table.
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM activity_logs
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id FROM activity_logs ORDER BY id DESC LIMIT ?
			) recent
		)`, maxEntries).Error
}

// List returns up to the 100 most recent entries, newest first.
func (r *ActivityRepository) List(ctx context.Context) ([]db.ActivityLog, error) {
	var entries []db.ActivityLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(maxEntries).
		Find(&entries).Error
	return entries, err
}
