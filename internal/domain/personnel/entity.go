package personnel

import "time"

// Type selects between the two personnel collections. Staff and trainees
// carry the same core fields but live in separate tables.
type Type string

const (
	TypeStaff   Type = "staff"
	TypeTrainee Type = "trainee"
)

func (t Type) Valid() bool {
	return t == TypeStaff || t == TypeTrainee
}

type Personnel struct {
	ID                     string
	Type                   Type
	PNO                    string
	Name                   string
	FatherName             string
	Rank                   string
	MobileNumber           string
	Education              *string
	DateOfBirth            *time.Time
	DateOfJoining          *time.Time
	BloodGroup             *string
	Nominee                *string
	HomeAddress            *string
	CurrentPostingDistrict *string
	PhotoURL               *string
	ToliNo                 *string

	// Trainee only
	ChestNo       *string
	ArrivalDate   *time.Time
	DepartureDate *time.Time

	// Staff only
	ClassNo      *string
	ClassSubject *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
