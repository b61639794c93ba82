package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User table. Email is stored lowercase so the unique index enforces
// case-insensitive uniqueness.
//
// FullName, DOB and Email are immutable after registration for ordinary
// profile updates; admin edits may change Email but must re-check uniqueness.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FullName     string `gorm:"size:128;not null"`
	Mobile       string `gorm:"size:32;not null"`
	// DOB keeps the wire format "DD/MM/YYYY"; validated at registration.
	DOB         string    `gorm:"size:10;not null"`
	Gender      Gender    `gorm:"size:16;not null;index"`
	Education   Education `gorm:"size:32;not null"`
	Occupation  string    `gorm:"size:128"`
	FullAddress string    `gorm:"size:255"`
	City        string    `gorm:"size:64;index"`
	State       string    `gorm:"size:64;index"`
	Divorced    bool      `gorm:"default:false"`
	// PhotoDataURI stores the profile photo as a base64 data URI.
	PhotoDataURI string    `gorm:"type:text"`
	Status       Status    `gorm:"size:16;not null;default:Active;index"`
	IsAdmin      bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_users_created_id,priority:1"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ShortlistEntry records a one-directional bookmark from viewer to target.
//
// Composite PK (ViewerID, TargetID) keeps a single row per pair, so toggling
// is an insert or a delete, never a duplicate.
type ShortlistEntry struct {
	ViewerID  string    `gorm:"primaryKey;size:36;index:idx_shortlist_viewer_created,priority:1"`
	TargetID  string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_shortlist_viewer_created,priority:2"`
}

// Report is an informational complaint against a profile. Reports never
// change the reported user's status, and duplicates are allowed.
// Name snapshots survive deletion of either party.
type Report struct {
	ID               string    `gorm:"primaryKey;size:36"`
	ReporterID       string    `gorm:"size:36;not null;index"`
	ReporterName     string    `gorm:"size:128;not null"`
	ReportedUserID   string    `gorm:"size:36;not null;index"`
	ReportedUserName string    `gorm:"size:128;not null"`
	Reason           string    `gorm:"size:64;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ActivityLog is the append-only audit trail, capped to the 100 most recent
// rows by the repository after each insert. The autoincrement id doubles as
// the insertion order, so newest-first reads stay stable even when two
// appends share a timestamp.
//
// ActorID is null for system/seed actions. ActorName is a snapshot taken at
// write time; readers prefer the live user record and fall back to it.
type ActivityLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ActorID   *string   `gorm:"size:36;index"`
	ActorName string    `gorm:"size:128;not null"`
	Action    string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
