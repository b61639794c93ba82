package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
)

// UserRepository provides data access methods for the User model.
// Emails are normalized to lowercase on every write and lookup so the
// unique index enforces case-insensitive uniqueness.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	user.Email = NormalizeEmail(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID fetches a user by id. Returns gorm.ErrRecordNotFound if missing.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by email, case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).
		First(&user, "email = ?", NormalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether another record already owns the email.
// excludeID skips the record being edited so a user keeps their own address.
func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("email = ?", NormalizeEmail(email))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListActiveNonAdmin returns all records visible to ordinary users,
// ordered by creation time then id for stable pagination.
func (r *UserRepository) ListActiveNonAdmin(ctx context.Context) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ? AND status = ?", false, db.StatusActive).
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

// ListNonAdmin returns every non-admin record regardless of status.
// Admin records never appear in the management table.
func (r *UserRepository) ListNonAdmin(ctx context.Context) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

// ListByIDs returns the records matching the given ids; missing ids are
// silently omitted.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []string) ([]db.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

// Save persists every field of an existing record.
func (r *UserRepository) Save(ctx context.Context, user *db.User) error {
	user.Email = NormalizeEmail(user.Email)
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateStatus sets the moderation status of a user.
func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status db.Status) error {
	result := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-removes the user row. Shortlist rows referencing the id are
// left behind; resolution joins tolerate them.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&db.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CityCount is one row of the usage-by-city report.
type CityCount struct {
	City  string `json:"name"`
	Users int64  `json:"users"`
}

// UsageByCity counts non-admin users per city.
func (r *UserRepository) UsageByCity(ctx context.Context) ([]CityCount, error) {
	var rows []CityCount
	err := r.db.WithContext(ctx).
		Model(&db.User{}).
		Select("city, COUNT(*) AS users").
		Where("is_admin = ?", false).
		Group("city").
		Order("city ASC").
		Find(&rows).Error
	return rows, err
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
