package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
	"github.com/JagtapGaurav/Matrimonial/internal/utils/age"
)

// minRegistrationAge is the business floor for new accounts.
const minRegistrationAge = 18

// Service implements registration, authentication and profile self-service.
type Service struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	activity *repository.ActivityRepository
}

// NewService creates an account service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		users:    repository.NewUserRepository(appCtx.DB),
		activity: repository.NewActivityRepository(appCtx.DB),
	}
}

// RegisterInput carries everything a new registration needs. The photo
// arrives as a data URI produced by the browser.
type RegisterInput struct {
	Email           string       `json:"email" validate:"required,email"`
	Password        string       `json:"password" validate:"required,min=6"`
	ConfirmPassword string       `json:"confirmPassword" validate:"required"`
	FullName        string       `json:"fullName" validate:"required"`
	Mobile          string       `json:"mobile" validate:"required"`
	DOB             string       `json:"dob" validate:"required"`
	Gender          db.Gender    `json:"gender" validate:"required"`
	Education       db.Education `json:"education" validate:"required"`
	Occupation      string       `json:"occupation"`
	FullAddress     string       `json:"fullAddress"`
	City            string       `json:"city" validate:"required"`
	State           string       `json:"state" validate:"required"`
	Divorced        bool         `json:"isDivorced"`
	PhotoDataURI    string       `json:"profilePhoto" validate:"required"`
}

// RegisterUser creates a new Active user after validating the business rules:
// matching password confirmation, known enum values, a parseable DOB, age of
// at least 18, and a free email address (case-insensitive).
func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*db.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, svcErr.InvalidArgument("passwords do not match")
	}
	if !in.Gender.Valid() {
		return nil, svcErr.InvalidArgument("unknown gender")
	}
	if !in.Education.Valid() {
		return nil, svcErr.InvalidArgument("unknown education level")
	}

	years, err := age.Now(in.DOB)
	if err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	if years < minRegistrationAge {
		return nil, svcErr.InvalidArgument("you must be at least 18 years old to register")
	}

	taken, err := s.users.EmailTaken(ctx, in.Email, "")
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if taken {
		return nil, svcErr.AlreadyExists("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	user := &db.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Mobile:       in.Mobile,
		DOB:          in.DOB,
		Gender:       in.Gender,
		Education:    in.Education,
		Occupation:   in.Occupation,
		FullAddress:  in.FullAddress,
		City:         in.City,
		State:        in.State,
		Divorced:     in.Divorced,
		PhotoDataURI: in.PhotoDataURI,
		Status:       db.StatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// unique index is the last line of defense against a racing duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, svcErr.AlreadyExists("an account with this email already exists")
		}
		return nil, svcErr.Map(err)
	}

	if err := s.activity.Append(ctx, &user.ID, user.FullName, "New user registered"); err != nil {
		s.appCtx.Logger.Error("failed to log registration", "err", err)
	}

	return user, nil
}

// Login checks credentials and starts a session.
//
// Wrong email and wrong password yield the same generic message so the
// response does not reveal which field was wrong. A non-Active account is
// refused with its current status named.
func (s *Service) Login(ctx context.Context, email, password string) (*db.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", svcErr.New(svcErr.KindUnauthorized, "invalid email or password")
		}
		return nil, "", svcErr.Map(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", svcErr.New(svcErr.KindUnauthorized, "invalid email or password")
	}

	if user.Status != db.StatusActive {
		return nil, "", svcErr.Newf(svcErr.KindForbidden,
			"your account is currently %s. Please contact an administrator.", user.Status)
	}

	token, err := s.appCtx.Sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, "", svcErr.Map(err)
	}

	if err := s.activity.Append(ctx, &user.ID, user.FullName, "User logged in"); err != nil {
		s.appCtx.Logger.Error("failed to log login", "err", err)
	}

	return user, token, nil
}

// Logout ends the session behind the token.
func (s *Service) Logout(ctx context.Context, user *db.User, token string) error {
	if err := s.appCtx.Sessions.Revoke(ctx, token); err != nil {
		return svcErr.Map(err)
	}
	if err := s.activity.Append(ctx, &user.ID, user.FullName, "User logged out"); err != nil {
		s.appCtx.Logger.Error("failed to log logout", "err", err)
	}
	return nil
}

// UpdateProfileInput is the mutable subset of a profile. Full name, DOB and
// email cannot change through self-service; nil fields are left untouched.
type UpdateProfileInput struct {
	Mobile       *string       `json:"mobile"`
	Gender       *db.Gender    `json:"gender"`
	Education    *db.Education `json:"education"`
	Occupation   *string       `json:"occupation"`
	FullAddress  *string       `json:"fullAddress"`
	City         *string       `json:"city"`
	State        *string       `json:"state"`
	Divorced     *bool         `json:"isDivorced"`
	PhotoDataURI *string       `json:"profilePhoto"`
	Password     *string       `json:"password"`
}

// UpdateProfile applies a partial update to the user's own record.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*db.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, svcErr.Map(err)
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
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, svcErr.Map(err)
	}

	action := fmt.Sprintf("Profile updated for %s", user.FullName)
	if err := s.activity.Append(ctx, &user.ID, user.FullName, action); err != nil {
		s.appCtx.Logger.Error("failed to log profile update", "err", err)
	}

	return user, nil
}

// Deactivate performs self-service deactivation. The reason must come from
// the fixed set, and every session of the user is terminated immediately.
func (s *Service) Deactivate(ctx context.Context, user *db.User, reason string) error {
	if !db.ValidReason(db.DeactivationReasons, reason) {
		return svcErr.InvalidArgument("a deactivation reason must be selected")
	}
	if user.Status != db.StatusActive {
		return svcErr.Newf(svcErr.KindValidation, "account is already %s", user.Status)
	}

	if err := s.users.UpdateStatus(ctx, user.ID, db.StatusDeactivated); err != nil {
		return svcErr.Map(err)
	}

	action := fmt.Sprintf("Deactivated own account (reason: %s)", reason)
	if err := s.activity.Append(ctx, &user.ID, user.FullName, action); err != nil {
		s.appCtx.Logger.Error("failed to log deactivation", "err", err)
	}

	return svcErr.Map(s.appCtx.Sessions.RevokeUser(ctx, user.ID))
}
