package match_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/cache"
	"github.com/JagtapGaurav/Matrimonial/internal/config"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/service/match"
	"github.com/JagtapGaurav/Matrimonial/internal/session"
)

func setupAppContext(t *testing.T) *app.AppContext {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&db.User{}, &db.ShortlistEntry{}, &db.Report{}, &db.ActivityLog{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rdb := cache.NewRedisCache(cfg)

	sessions, err := session.NewManager(rdb, time.Hour)
	require.NoError(t, err)

	return app.New(database, rdb, sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// dobForAge builds a DOB string for someone who turned the given age
// a month ago.
func dobForAge(years int) string {
	return time.Now().AddDate(-years, -1, 0).Format("02/01/2006")
}

type profile struct {
	email     string
	gender    db.Gender
	ageYears  int
	city      string
	state     string
	education db.Education
	status    db.Status
	isAdmin   bool
}

func seedProfile(t *testing.T, database *gorm.DB, p profile) *db.User {
	t.Helper()
	u := &db.User{
		Email:        p.email,
		PasswordHash: "x",
		FullName:     p.email,
		DOB:          dobForAge(p.ageYears),
		Gender:       p.gender,
		Education:    p.education,
		City:         p.city,
		State:        p.state,
		Status:       p.status,
		IsAdmin:      p.isAdmin,
	}
	require.NoError(t, database.Create(u).Error)
	return u
}

func activeFemale(email string, age int) profile {
	return profile{
		email: email, gender: db.GenderFemale, ageYears: age,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	}
}

func TestGenderPairing(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)

	male := seedProfile(t, appCtx.DB, profile{
		email: "m@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})
	female := seedProfile(t, appCtx.DB, activeFemale("f@example.com", 28))
	other := seedProfile(t, appCtx.DB, profile{
		email: "o@example.com", gender: db.GenderOther, ageYears: 31,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})

	res, err := svc.ListVisibleCandidates(ctx, male, match.Filters{}, 1)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, female.ID, res.Candidates[0].ID)

	res, err = svc.ListVisibleCandidates(ctx, female, match.Filters{}, 1)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, male.ID, res.Candidates[0].ID)

	// Other sees everyone but themselves
	res, err = svc.ListVisibleCandidates(ctx, other, match.Filters{}, 1)
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 2)
}

func TestPoolExclusions(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)

	viewer := seedProfile(t, appCtx.DB, profile{
		email: "viewer@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})
	visible := seedProfile(t, appCtx.DB, activeFemale("visible@example.com", 28))

	blocked := activeFemale("blocked@example.com", 27)
	blocked.status = db.StatusBlocked
	seedProfile(t, appCtx.DB, blocked)

	deactivated := activeFemale("gone@example.com", 29)
	deactivated.status = db.StatusDeactivated
	seedProfile(t, appCtx.DB, deactivated)

	adminF := activeFemale("admin@example.com", 35)
	adminF.isAdmin = true
	seedProfile(t, appCtx.DB, adminF)

	res, err := svc.ListVisibleCandidates(ctx, viewer, match.Filters{}, 1)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, visible.ID, res.Candidates[0].ID)
}

func TestFiltersCombineWithAnd(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)

	viewer := seedProfile(t, appCtx.DB, profile{
		email: "viewer@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})

	wanted := activeFemale("match@example.com", 26)
	wanted.city = "Mumbai"
	wanted.education = db.EducationMBA
	target := seedProfile(t, appCtx.DB, wanted)

	wrongCity := activeFemale("wrongcity@example.com", 26)
	wrongCity.city = "Nagpur"
	wrongCity.education = db.EducationMBA
	seedProfile(t, appCtx.DB, wrongCity)

	wrongEdu := activeFemale("wrongedu@example.com", 26)
	wrongEdu.city = "Mumbai"
	seedProfile(t, appCtx.DB, wrongEdu)

	tooOld := activeFemale("tooold@example.com", 41)
	tooOld.city = "Mumbai"
	tooOld.education = db.EducationMBA
	seedProfile(t, appCtx.DB, tooOld)

	res, err := svc.ListVisibleCandidates(ctx, viewer, match.Filters{
		MinAge:    21,
		MaxAge:    35,
		State:     "Maharashtra",
		City:      "Mumbai",
		Education: db.EducationMBA,
	}, 1)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, target.ID, res.Candidates[0].ID)
}

func TestAgeBoundsAreInclusive(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)

	viewer := seedProfile(t, appCtx.DB, profile{
		email: "viewer@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})
	seedProfile(t, appCtx.DB, activeFemale("a25@example.com", 25))
	seedProfile(t, appCtx.DB, activeFemale("a30@example.com", 30))
	seedProfile(t, appCtx.DB, activeFemale("a24@example.com", 24))
	seedProfile(t, appCtx.DB, activeFemale("a31@example.com", 31))

	res, err := svc.ListVisibleCandidates(ctx, viewer, match.Filters{MinAge: 25, MaxAge: 30}, 1)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 2)
	emails := []string{res.Candidates[0].Email, res.Candidates[1].Email}
	assert.Contains(t, emails, "a25@example.com")
	assert.Contains(t, emails, "a30@example.com")
}

func TestInvalidAgeRange(t *testing.T) {
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)
	viewer := seedProfile(t, appCtx.DB, profile{
		email: "viewer@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})

	_, err := svc.ListVisibleCandidates(context.Background(), viewer, match.Filters{MinAge: 40, MaxAge: 20}, 1)
	assert.True(t, svcErr.IsKind(err, svcErr.KindValidation))
}

func TestCumulativeWindows(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := match.NewService(appCtx)

	viewer := seedProfile(t, appCtx.DB, profile{
		email: "viewer@example.com", gender: db.GenderMale, ageYears: 30,
		city: "Pune", state: "Maharashtra",
		education: db.EducationGraduation, status: db.StatusActive,
	})
	for i := 0; i < 15; i++ {
		seedProfile(t, appCtx.DB, activeFemale(fmt.Sprintf("c%02d@example.com", i), 25+i%10))
	}

	first, err := svc.ListVisibleCandidates(ctx, viewer, match.Filters{}, 1)
	require.NoError(t, err)
	assert.Len(t, first.Candidates, 12)
	assert.Equal(t, 15, first.Total)
	assert.True(t, first.HasMore)

	// page two is cumulative, not offset
	second, err := svc.ListVisibleCandidates(ctx, viewer, match.Filters{}, 2)
	require.NoError(t, err)
	assert.Len(t, second.Candidates, 15)
	assert.False(t, second.HasMore)
	assert.Equal(t, first.Candidates[0].ID, second.Candidates[0].ID)
}
