package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
)

// ReportRepository provides data access methods for profile reports.
// Reports are a pure append log; repeated reports by the same reporter
// against the same target are allowed.
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new repository bound to the given DB connection.
func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{db: database}
}

// Create appends a report.
func (r *ReportRepository) Create(ctx context.Context, report *db.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// List returns all reports, newest first.
func (r *ReportRepository) List(ctx context.Context) ([]db.Report, error) {
	var reports []db.Report
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	return reports, err
}
