package report

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
)

// Service accepts profile reports from members. Reports carry name snapshots
// so they stay readable after either party is deleted.
type Service struct {
	appCtx  *app.AppContext
	users   *repository.UserRepository
	reports *repository.ReportRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:  appCtx,
		users:   repository.NewUserRepository(appCtx.DB),
		reports: repository.NewReportRepository(appCtx.DB),
	}
}

// Submit files a report against another profile. The reason must come from
// the fixed set. Repeat reports against the same profile are allowed.
func (s *Service) Submit(ctx context.Context, reporter *db.User, reportedUserID, reason string) (*db.Report, error) {
	if !db.ValidReason(db.ReportReasons, reason) {
		return nil, svcErr.InvalidArgument("a report reason must be selected")
	}
	if reportedUserID == reporter.ID {
		return nil, svcErr.InvalidArgument("cannot report yourself")
	}

	reported, err := s.users.GetByID(ctx, reportedUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.NotFound("profile not found")
		}
		return nil, svcErr.Map(err)
	}

	rec := &db.Report{
		ReporterID:       reporter.ID,
		ReporterName:     reporter.FullName,
		ReportedUserID:   reported.ID,
		ReportedUserName: reported.FullName,
		Reason:           reason,
	}
	if err := s.reports.Create(ctx, rec); err != nil {
		return nil, svcErr.Map(err)
	}
	return rec, nil
}
