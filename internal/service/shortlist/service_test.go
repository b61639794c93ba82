package shortlist_test

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
	"github.com/JagtapGaurav/Matrimonial/internal/service/shortlist"
	"github.com/JagtapGaurav/Matrimonial/internal/session"
)

func setupAppContext(t *testing.T) (*app.AppContext, *miniredis.Miniredis) {
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

	return app.New(database, rdb, sessions, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func seedUser(t *testing.T, database *gorm.DB, email string, isAdmin bool) *db.User {
	t.Helper()
	u := &db.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     email,
		DOB:          "01/01/1990",
		Gender:       db.GenderFemale,
		Education:    db.EducationGraduation,
		City:         "Pune",
		State:        "Maharashtra",
		Status:       db.StatusActive,
		IsAdmin:      isAdmin,
	}
	require.NoError(t, database.Create(u).Error)
	return u
}

func TestToggleAddsAndRemoves(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)
	target := seedUser(t, appCtx.DB, "target@example.com", false)

	ids, err := svc.Toggle(ctx, viewer, target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{target.ID}, ids)

	// second toggle removes
	ids, err = svc.Toggle(ctx, viewer, target.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleGuards(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)
	admin := seedUser(t, appCtx.DB, "admin@example.com", true)

	_, err := svc.Toggle(ctx, viewer, viewer.ID)
	assert.True(t, svcErr.IsKind(err, svcErr.KindValidation))

	_, err = svc.Toggle(ctx, viewer, "no-such-id")
	assert.True(t, svcErr.IsKind(err, svcErr.KindNotFound))

	_, err = svc.Toggle(ctx, viewer, admin.ID)
	assert.True(t, svcErr.IsKind(err, svcErr.KindNotFound))
}

func TestIDsServedFromCacheAfterToggle(t *testing.T) {
	ctx := context.Background()
	appCtx, mr := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)
	target := seedUser(t, appCtx.DB, "target@example.com", false)

	_, err := svc.Toggle(ctx, viewer, target.ID)
	require.NoError(t, err)

	// cache key exists after the toggle refresh
	assert.True(t, mr.Exists(appCtx.RedisCache.KeyForShortlist(viewer.ID)))

	ids, err := svc.IDs(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{target.ID}, ids)
}

func TestIDsFallsBackToDatabaseOnCacheMiss(t *testing.T) {
	ctx := context.Background()
	appCtx, mr := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)
	target := seedUser(t, appCtx.DB, "target@example.com", false)

	_, err := svc.Toggle(ctx, viewer, target.ID)
	require.NoError(t, err)

	mr.FlushAll()

	ids, err := svc.IDs(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{target.ID}, ids)

	// the read repopulated the cache
	assert.True(t, mr.Exists(appCtx.RedisCache.KeyForShortlist(viewer.ID)))
}

func TestProfilesOmitMissingUsers(t *testing.T) {
	ctx := context.Background()
	appCtx, mr := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)
	kept := seedUser(t, appCtx.DB, "kept@example.com", false)
	doomed := seedUser(t, appCtx.DB, "doomed@example.com", false)

	_, err := svc.Toggle(ctx, viewer, kept.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, viewer, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, appCtx.DB.Delete(&db.User{}, "id = ?", doomed.ID).Error)
	mr.FlushAll()

	profiles, err := svc.Profiles(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, kept.ID, profiles[0].ID)
}

func TestEmptyShortlist(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupAppContext(t)
	svc := shortlist.NewService(appCtx)

	viewer := seedUser(t, appCtx.DB, "viewer@example.com", false)

	ids, err := svc.IDs(ctx, viewer.ID)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	profiles, err := svc.Profiles(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
