package shortlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
)

// Service keeps each user's shortlist. The id set is cached in Redis and
// invalidated on every toggle; the database stays authoritative.
type Service struct {
	appCtx     *app.AppContext
	users      *repository.UserRepository
	shortlists *repository.ShortlistRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:     appCtx,
		users:      repository.NewUserRepository(appCtx.DB),
		shortlists: repository.NewShortlistRepository(appCtx.DB),
	}
}

// Toggle adds the target to the viewer's shortlist, or removes it when
// already present, and returns the full id set after the change.
func (s *Service) Toggle(ctx context.Context, viewer *db.User, targetID string) ([]string, error) {
	if targetID == viewer.ID {
		return nil, svcErr.InvalidArgument("cannot shortlist yourself")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.NotFound("profile not found")
		}
		return nil, svcErr.Map(err)
	}
	if target.IsAdmin {
		return nil, svcErr.NotFound("profile not found")
	}

	ids, err := s.shortlists.Toggle(ctx, viewer.ID, targetID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.SetShortlist(ctx, viewer.ID, ids); err != nil {
		// cache refresh failure must not fail the toggle
		s.appCtx.Logger.Warn("failed to refresh shortlist cache", "err", err)
		if err := s.appCtx.RedisCache.InvalidateShortlist(ctx, viewer.ID); err != nil {
			s.appCtx.Logger.Warn("failed to invalidate shortlist cache", "err", err)
		}
	}

	return ids, nil
}

// IDs returns the viewer's shortlisted profile ids, serving from cache when
// possible.
func (s *Service) IDs(ctx context.Context, viewerID string) ([]string, error) {
	if ids, ok, err := s.appCtx.RedisCache.GetShortlist(ctx, viewerID); err == nil && ok {
		return ids, nil
	} else if err != nil {
		s.appCtx.Logger.Warn("shortlist cache read failed", "err", err)
	}

	ids, err := s.shortlists.ListIDs(ctx, viewerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.SetShortlist(ctx, viewerID, ids); err != nil {
		s.appCtx.Logger.Warn("failed to populate shortlist cache", "err", err)
	}
	return ids, nil
}

// Profiles resolves the shortlist into full profiles. Entries whose user no
// longer exists are silently omitted.
func (s *Service) Profiles(ctx context.Context, viewerID string) ([]db.User, error) {
	ids, err := s.IDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []db.User{}, nil
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	byID := make(map[string]db.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]db.User, 0, len(users))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}
