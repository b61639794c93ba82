package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
)

// ShortlistRepository provides data access methods for shortlist entries.
// Membership is a composite-PK row per (viewer, target) pair, so a toggle is
// an insert or a delete and never produces duplicates.
type ShortlistRepository struct {
	db *gorm.DB
}

// NewShortlistRepository creates a new repository bound to the given DB connection.
func NewShortlistRepository(database *gorm.DB) *ShortlistRepository {
	return &ShortlistRepository{db: database}
}

// Toggle flips membership of target in the viewer's shortlist and returns
// the resulting full id set.
func (r *ShortlistRepository) Toggle(ctx context.Context, viewerID, targetID string) ([]string, error) {
	var existing db.ShortlistEntry
	err := r.db.WithContext(ctx).
		First(&existing, "viewer_id = ? AND target_id = ?", viewerID, targetID).Error

	switch {
	case err == nil:
		if err := r.db.WithContext(ctx).
			Delete(&db.ShortlistEntry{}, "viewer_id = ? AND target_id = ?", viewerID, targetID).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := db.ShortlistEntry{ViewerID: viewerID, TargetID: targetID}
		if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return r.ListIDs(ctx, viewerID)
}

// ListIDs returns the viewer's shortlisted target ids in bookmark order.
// A viewer with no entries gets an empty set, not an error.
func (r *ShortlistRepository) ListIDs(ctx context.Context, viewerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db.ShortlistEntry{}).
		Where("viewer_id = ?", viewerID).
		Order("created_at ASC, target_id ASC").
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Contains reports whether target is in the viewer's shortlist.
func (r *ShortlistRepository) Contains(ctx context.Context, viewerID, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.ShortlistEntry{}).
		Where("viewer_id = ? AND target_id = ?", viewerID, targetID).
		Count(&count).Error
	return count > 0, err
}

// DeleteByUser removes every entry involving the user, on either side.
// Called when an account is hard deleted.
func (r *ShortlistRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&db.ShortlistEntry{}, "viewer_id = ? OR target_id = ?", userID, userID).Error
}
