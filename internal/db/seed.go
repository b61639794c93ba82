package db

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Email      string
	Password   string
	FullName   string
	Mobile     string
	DOB        string
	Gender     Gender
	Education  Education
	Occupation string
	Address    string
	City       string
	State      string
	Divorced   bool
	Status     Status
	IsAdmin    bool
}

var demoUsers = []seedUser{
	{
		Email: "admin@example.com", Password: "admin", FullName: "Admin User",
		Mobile: "1234567890", DOB: "01/01/1990", Gender: GenderMale,
		Education: EducationPHD, Occupation: "System Administrator",
		Address: "123 Admin Way", City: "Mumbai", State: "Maharashtra",
		Status: StatusActive, IsAdmin: true,
	},
	{
		Email: "jane.doe@example.com", Password: "password123", FullName: "Jane Doe",
		Mobile: "9876543210", DOB: "15/05/1992", Gender: GenderFemale,
		Education: EducationPostGraduation, Occupation: "Graphic Designer",
		Address: "456 Creative Ave", City: "Pune", State: "Maharashtra",
		Divorced: true, Status: StatusActive,
	},
	{
		Email: "john.smith@example.com", Password: "password123", FullName: "John Smith",
		Mobile: "5551234567", DOB: "22/08/1988", Gender: GenderMale,
		Education: EducationEngineer, Occupation: "Software Engineer",
		Address: "789 Code St", City: "Bengaluru", State: "Karnataka",
		Status: StatusActive,
	},
	{
		Email: "emily.jones@example.com", Password: "password123", FullName: "Emily Jones",
		Mobile: "5559876543", DOB: "10/11/1995", Gender: GenderFemale,
		Education: EducationMBA, Occupation: "Marketing Manager",
		Address: "101 Market Blvd", City: "Delhi", State: "Delhi",
		Status: StatusActive,
	},
	{
		Email: "michael.brown@example.com", Password: "password123", FullName: "Michael Brown",
		Mobile: "5555551234", DOB: "03/03/1985", Gender: GenderMale,
		Education: EducationDoctor, Occupation: "Physician",
		Address: "21 Health Rd", City: "Chennai", State: "Tamil Nadu",
		Divorced: true, Status: StatusBlocked,
	},
	{
		Email: "sarah.davis@example.com", Password: "password123", FullName: "Sarah Davis",
		Mobile: "5555555678", DOB: "28/02/1993", Gender: GenderFemale,
		Education: EducationGraduation, Occupation: "Data Scientist",
		Address: "33 Algorithm Aly", City: "Hyderabad", State: "Telangana",
		Status: StatusActive,
	},
	{
		Email: "priya.sharma@example.com", Password: "password123", FullName: "Priya Sharma",
		Mobile: "5551112233", DOB: "12/07/1994", Gender: GenderFemale,
		Education: EducationEngineer, Occupation: "AI Specialist",
		Address: "55 Tech Park", City: "Pune", State: "Maharashtra",
		Divorced: true, Status: StatusActive,
	},
}

// SeedDemoData populates an empty users table with the demo accounts.
// Existing data is left untouched so repeated startups are safe.
func SeedDemoData(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, su := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := User{
			Email:        strings.ToLower(su.Email),
			PasswordHash: string(hash),
			FullName:     su.FullName,
			Mobile:       su.Mobile,
			DOB:          su.DOB,
			Gender:       su.Gender,
			Education:    su.Education,
			Occupation:   su.Occupation,
			FullAddress:  su.Address,
			City:         su.City,
			State:        su.State,
			Divorced:     su.Divorced,
			Status:       su.Status,
			IsAdmin:      su.IsAdmin,
		}
		if err := gdb.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.Email, err)
		}
	}

	log.Printf("Seeded %d demo users.", len(demoUsers))
	return nil
}

// ResetAndSeed wipes every table and reloads the demo dataset. Used by the
// seed command for a fresh start.
func ResetAndSeed(gdb *gorm.DB) error {
	for _, table := range []string{"activity_logs", "reports", "shortlist_entries", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return SeedDemoData(gdb)
}
