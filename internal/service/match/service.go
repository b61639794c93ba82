package match

import (
	"context"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
	"github.com/JagtapGaurav/Matrimonial/internal/utils/age"
	"github.com/JagtapGaurav/Matrimonial/internal/utils/pagination"
)

// Service serves the browse page: which profiles a viewer may see,
// narrowed by filters and paged in cumulative windows.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		users:  repository.NewUserRepository(appCtx.DB),
	}
}

// Filters narrows the candidate pool. Zero values mean "no restriction";
// all present filters must match at once.
type Filters struct {
	MinAge    int
	MaxAge    int
	State     string
	City      string
	Education db.Education
}

// Result is one window of the candidate list. Total counts every profile
// matching the filters, not just the returned window.
type Result struct {
	Candidates []db.User
	Total      int
	HasMore    bool
}

// ListVisibleCandidates returns the viewer's candidate window.
//
// The pool never contains the viewer, admins, or non-Active accounts.
// Gender works as opposite-pairing: a Male viewer sees Female profiles and a
// Female viewer sees Male profiles; a viewer of gender Other sees everyone.
// Profiles with an unparseable DOB are dropped whenever an age bound is set.
func (s *Service) ListVisibleCandidates(ctx context.Context, viewer *db.User, f Filters, page int) (*Result, error) {
	if f.Education != "" && !f.Education.Valid() {
		return nil, svcErr.InvalidArgument("unknown education level")
	}
	if f.MinAge < 0 || f.MaxAge < 0 {
		return nil, svcErr.InvalidArgument("age bounds cannot be negative")
	}
	if f.MinAge > 0 && f.MaxAge > 0 && f.MinAge > f.MaxAge {
		return nil, svcErr.InvalidArgument("minimum age cannot exceed maximum age")
	}

	pool, err := s.users.ListActiveNonAdmin(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	matched := make([]db.User, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == viewer.ID {
			continue
		}
		if !genderVisible(viewer.Gender, candidate.Gender) {
			continue
		}
		if !f.matches(&candidate) {
			continue
		}
		matched = append(matched, candidate)
	}

	window := pagination.NewWindow(page, pagination.DefaultPerPage)
	return &Result{
		Candidates: pagination.Slice(matched, window),
		Total:      len(matched),
		HasMore:    window.HasMore(len(matched)),
	}, nil
}

func genderVisible(viewer, candidate db.Gender) bool {
	switch viewer {
	case db.GenderMale:
		return candidate == db.GenderFemale
	case db.GenderFemale:
		return candidate == db.GenderMale
	default:
		return true
	}
}

func (f Filters) matches(u *db.User) bool {
	if f.State != "" && u.State != f.State {
		return false
	}
	if f.City != "" && u.City != f.City {
		return false
	}
	if f.Education != "" && u.Education != f.Education {
		return false
	}
	if f.MinAge > 0 || f.MaxAge > 0 {
		years, err := age.Now(u.DOB)
		if err != nil {
			return false
		}
		if f.MinAge > 0 && years < f.MinAge {
			return false
		}
		if f.MaxAge > 0 && years > f.MaxAge {
			return false
		}
	}
	return true
}
