package report_test

import (
	"context"
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
	"github.com/JagtapGaurav/Matrimonial/internal/service/report"
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

func seedUser(t *testing.T, database *gorm.DB, email, name string) *db.User {
	t.Helper()
	u := &db.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     name,
		DOB:          "01/01/1990",
		Gender:       db.GenderMale,
		Education:    db.EducationGraduation,
		City:         "Pune",
		State:        "Maharashtra",
		Status:       db.StatusActive,
	}
	require.NoError(t, database.Create(u).Error)
	return u
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := report.NewService(appCtx)

	reporter := seedUser(t, appCtx.DB, "reporter@example.com", "Rita Rao")
	reported := seedUser(t, appCtx.DB, "reported@example.com", "Sam Smith")

	rec, err := svc.Submit(ctx, reporter, reported.ID, "Spam profile")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Rita Rao", rec.ReporterName)
	assert.Equal(t, "Sam Smith", rec.ReportedUserName)
	assert.Equal(t, "Spam profile", rec.Reason)

	// reporting never touches the target's status
	var stored db.User
	require.NoError(t, appCtx.DB.First(&stored, "id = ?", reported.ID).Error)
	assert.Equal(t, db.StatusActive, stored.Status)
}

func TestSubmitAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := report.NewService(appCtx)

	reporter := seedUser(t, appCtx.DB, "reporter@example.com", "Rita Rao")
	reported := seedUser(t, appCtx.DB, "reported@example.com", "Sam Smith")

	_, err := svc.Submit(ctx, reporter, reported.ID, "Married")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, reporter, reported.ID, "Married")
	require.NoError(t, err)

	var count int64
	require.NoError(t, appCtx.DB.Model(&db.Report{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitGuards(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppContext(t)
	svc := report.NewService(appCtx)

	reporter := seedUser(t, appCtx.DB, "reporter@example.com", "Rita Rao")
	reported := seedUser(t, appCtx.DB, "reported@example.com", "Sam Smith")

	_, err := svc.Submit(ctx, reporter, reported.ID, "Because")
	assert.True(t, svcErr.IsKind(err, svcErr.KindValidation))

	_, err = svc.Submit(ctx, reporter, reporter.ID, "Married")
	assert.True(t, svcErr.IsKind(err, svcErr.KindValidation))

	_, err = svc.Submit(ctx, reporter, "no-such-id", "Married")
	assert.True(t, svcErr.IsKind(err, svcErr.KindNotFound))
}
