package admin

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
	"github.com/JagtapGaurav/Matrimonial/internal/utils/age"
)

// systemActor labels activity entries that have no acting user.
const systemActor = "System"

// Service backs the admin console: member management, usage reporting,
// report review and the activity trail.
type Service struct {
	appCtx     *app.AppContext
	users      *repository.UserRepository
	shortlists *repository.ShortlistRepository
	reports    *repository.ReportRepository
	activity   *repository.ActivityRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:     appCtx,
		users:      repository.NewUserRepository(appCtx.DB),
		shortlists: repository.NewShortlistRepository(appCtx.DB),
		reports:    repository.NewReportRepository(appCtx.DB),
		activity:   repository.NewActivityRepository(appCtx.DB),
	}
}

// ListUsers returns every member account regardless of status. Admin
// accounts never appear in the console listing.
func (s *Service) ListUsers(ctx context.Context) ([]db.User, error) {
	users, err := s.users.ListNonAdmin(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return users, nil
}

// EditProfileInput is the admin-editable profile. Unlike self-service,
// admins may also correct the full name, DOB and email.
type EditProfileInput struct {
	FullName     *string       `json:"fullName"`
	Email        *string       `json:"email"`
	Mobile       *string       `json:"mobile"`
	DOB          *string       `json:"dob"`
	Gender       *db.Gender    `json:"gender"`
	Education    *db.Education `json:"education"`
	Occupation   *string       `json:"occupation"`
	FullAddress  *string       `json:"fullAddress"`
	City         *string       `json:"city"`
	State        *string       `json:"state"`
	Divorced     *bool         `json:"isDivorced"`
	PhotoDataURI *string       `json:"profilePhoto"`
}

// EditProfile applies a partial update to a member's record on behalf of an
// admin. An email change re-checks uniqueness against every other account.
func (s *Service) EditProfile(ctx context.Context, actor *db.User, userID string, in EditProfileInput) (*db.User, error) {
	user, err := s.memberByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := repository.NormalizeEmail(*in.Email)
		if email == "" {
			return nil, svcErr.InvalidArgument("email cannot be empty")
		}
		taken, err := s.users.EmailTaken(ctx, email, user.ID)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		if taken {
			return nil, svcErr.AlreadyExists("an account with this email already exists")
		}
		user.Email = email
	}
	if in.DOB != nil {
		if _, err := age.ParseDOB(*in.DOB); err != nil {
			return nil, svcErr.InvalidArgument(err.Error())
		}
		user.DOB = *in.DOB
	}
	if in.Gender != nil {
		if !in.Gender.Valid() {
			return nil, svcErr.InvalidArgument("unknown gender")
		}
		user.Gender = *in.Gender
	}
	if in.Education != nil {
		if !in.Education.Valid() {
			return nil, svcErr.InvalidArgument("unknown education level")
		}
		user.Education = *in.Education
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, svcErr.InvalidArgument("full name cannot be empty")
		}
		user.FullName = *in.FullName
	}
	if in.Mobile != nil {
		user.Mobile = *in.Mobile
	}
	if in.Occupation != nil {
		user.Occupation = *in.Occupation
	}
	if in.FullAddress != nil {
		user.FullAddress = *in.FullAddress
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.State != nil {
		user.State = *in.State
	}
	if in.Divorced != nil {
		user.Divorced = *in.Divorced
	}
	if in.PhotoDataURI != nil {
		user.PhotoDataURI = *in.PhotoDataURI
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, svcErr.AlreadyExists("an account with this email already exists")
		}
		return nil, svcErr.Map(err)
	}

	s.logAction(ctx, actor, fmt.Sprintf("Updated %s's profile", user.FullName))
	return user, nil
}

// SetStatus moves a member between Active, Blocked and Deactivated. Any
// other value is rejected; deletion has its own operation. Leaving Active
// terminates the member's sessions at once.
func (s *Service) SetStatus(ctx context.Context, actor *db.User, userID string, status db.Status) (*db.User, error) {
	if !status.Valid() {
		return nil, svcErr.Newf(svcErr.KindValidation, "unknown status %q", status)
	}

	user, err := s.memberByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == status {
		return user, nil
	}

	if err := s.users.UpdateStatus(ctx, user.ID, status); err != nil {
		return nil, svcErr.Map(err)
	}
	user.Status = status

	if status != db.StatusActive {
		if err := s.appCtx.Sessions.RevokeUser(ctx, user.ID); err != nil {
			s.appCtx.Logger.Error("failed to revoke sessions", "user_id", user.ID, "err", err)
		}
	}

	s.logAction(ctx, actor, fmt.Sprintf("Updated %s's status to %s", user.FullName, status))
	return user, nil
}

// DeleteUser permanently removes a member, their shortlist involvement on
// both sides, their cached shortlist and their sessions. Reports and
// activity entries survive via their name snapshots.
func (s *Service) DeleteUser(ctx context.Context, actor *db.User, userID string) error {
	user, err := s.memberByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		return svcErr.Map(err)
	}
	if err := s.shortlists.DeleteByUser(ctx, user.ID); err != nil {
		return svcErr.Map(err)
	}
	if err := s.appCtx.RedisCache.InvalidateShortlist(ctx, user.ID); err != nil {
		s.appCtx.Logger.Warn("failed to drop shortlist cache", "user_id", user.ID, "err", err)
	}
	if err := s.appCtx.Sessions.RevokeUser(ctx, user.ID); err != nil {
		s.appCtx.Logger.Error("failed to revoke sessions", "user_id", user.ID, "err", err)
	}

	s.logAction(ctx, actor, fmt.Sprintf("Deleted user %s", user.FullName))
	return nil
}

// UsageByCity aggregates member counts per city, admins excluded.
func (s *Service) UsageByCity(ctx context.Context) ([]repository.CityCount, error) {
	counts, err := s.users.UsageByCity(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return counts, nil
}

// ListReports returns every filed report, newest first.
func (s *Service) ListReports(ctx context.Context) ([]db.Report, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return reports, nil
}

// ActivityEntry is one audit line with the actor label already resolved.
type ActivityEntry struct {
	ID        uint64 `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	CreatedAt string `json:"createdAt"`
}

// ActivityLog returns the audit trail, newest first. The actor label is the
// user's current name when the account still exists, the write-time snapshot
// otherwise, and "System" for entries with no actor.
func (s *Service) ActivityLog(ctx context.Context) ([]ActivityEntry, error) {
	logs, err := s.activity.List(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	idSet := make(map[string]struct{})
	for _, entry := range logs {
		if entry.ActorID != nil {
			idSet[*entry.ActorID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	liveNames := make(map[string]string, len(ids))
	if len(ids) > 0 {
		actors, err := s.users.ListByIDs(ctx, ids)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		for _, actor := range actors {
			liveNames[actor.ID] = actor.FullName
		}
	}

	out := make([]ActivityEntry, 0, len(logs))
	for _, entry := range logs {
		label := systemActor
		switch {
		case entry.ActorID == nil:
		case liveNames[*entry.ActorID] != "":
			label = liveNames[*entry.ActorID]
		default:
			label = entry.ActorName
		}
		out = append(out, ActivityEntry{
			ID:        entry.ID,
			Actor:     label,
			Action:    entry.Action,
			CreatedAt: entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out, nil
}

// memberByID loads a non-admin user. Admin accounts are invisible to the
// console, so targeting one reads as not found.
func (s *Service) memberByID(ctx context.Context, userID string) (*db.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, svcErr.Map(err)
	}
	if user.IsAdmin {
		return nil, svcErr.NotFound("user not found")
	}
	return user, nil
}

func (s *Service) logAction(ctx context.Context, actor *db.User, action string) {
	var actorID *string
	actorName := systemActor
	if actor != nil {
		actorID = &actor.ID
		actorName = actor.FullName
	}
	if err := s.activity.Append(ctx, actorID, actorName, action); err != nil {
		s.appCtx.Logger.Error("failed to append activity entry", "err", err)
	}
}
