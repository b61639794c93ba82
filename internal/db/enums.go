package db

// Status is the moderation lifecycle state of a user record.
//
// Deletion is a hard remove of the row, so there is no "Deleted" status value:
// a record either exists in one of these states or does not exist at all.
type Status string

const (
	StatusActive      Status = "Active"
	StatusBlocked     Status = "Blocked"
	StatusDeactivated Status = "Deactivated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusBlocked, StatusDeactivated:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Education is the nine-level education enum used by profile filters.
type Education string

const (
	EducationNone           Education = "Not Educated"
	EducationTenth          Education = "10th"
	EducationTwelfth        Education = "12th"
	EducationGraduation     Education = "Graduation"
	EducationPostGraduation Education = "Post Graduation"
	EducationEngineer       Education = "Engineer"
	EducationMBA            Education = "MBA"
	EducationPHD            Education = "PHD"
	EducationDoctor         Education = "Doctor"
)

// EducationLevels lists every valid education value in display order.
var EducationLevels = []Education{
	EducationNone,
	EducationTenth,
	EducationTwelfth,
	EducationGraduation,
	EducationPostGraduation,
	EducationEngineer,
	EducationMBA,
	EducationPHD,
	EducationDoctor,
}

func (e Education) Valid() bool {
	for _, level := range EducationLevels {
		if e == level {
			return true
		}
	}
	return false
}

// ReportReasons is the closed set a profile report must pick from.
var ReportReasons = []string{
	"Married",
	"Spam profile",
	"Incorrect details",
	"Inappropriate photos or content",
	"Other",
}

// DeactivationReasons is the closed set a self-deactivation must pick from.
var DeactivationReasons = []string{
	"Married",
	"Partner Not Found",
	"Cancelled my wedding plan",
	"Other",
}

// ValidReason reports whether reason appears in the given closed set.
func ValidReason(set []string, reason string) bool {
	for _, r := range set {
		if r == reason {
			return true
		}
	}
	return false
}
