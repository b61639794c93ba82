package dto

import (
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	"github.com/JagtapGaurav/Matrimonial/internal/utils/age"
)

// Address mirrors the nested address shape the browser client expects.
type Address struct {
	FullAddress string `json:"fullAddress"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// User is the public projection of a user record. The password hash never
// leaves the service layer.
type User struct {
	ID              string       `json:"id"`
	Email           string       `json:"email"`
	FullName        string       `json:"fullName"`
	Mobile          string       `json:"mobile"`
	DOB             string       `json:"dob"`
	Age             int          `json:"age,omitempty"`
	Gender          db.Gender    `json:"gender"`
	Education       db.Education `json:"education"`
	Occupation      string       `json:"occupation"`
	Address         Address      `json:"address"`
	Divorced        bool         `json:"isDivorced"`
	ProfilePhotoURL string       `json:"profilePhotoUrl"`
	Status          db.Status    `json:"status"`
	IsAdmin         bool         `json:"isAdmin"`
}

// FromUser converts a record into its public projection. An unparseable DOB
// leaves Age at zero rather than failing the whole response.
func FromUser(u *db.User) User {
	years, err := age.Now(u.DOB)
	if err != nil {
		years = 0
	}
	return User{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Mobile:          u.Mobile,
		DOB:             u.DOB,
		Age:             years,
		Gender:          u.Gender,
		Education:       u.Education,
		Occupation:      u.Occupation,
		Address:         Address{FullAddress: u.FullAddress, City: u.City, State: u.State},
		Divorced:        u.Divorced,
		ProfilePhotoURL: u.PhotoDataURI,
		Status:          u.Status,
		IsAdmin:         u.IsAdmin,
	}
}

// FromUsers converts a slice of records, preserving order.
func FromUsers(users []db.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
