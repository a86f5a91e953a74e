package personnel

import (
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

type CreatePersonnelRequest struct {
	PNO                    string  `json:"pno"`
	Name                   string  `json:"name"`
	FatherName             string  `json:"father_name"`
	Rank                   string  `json:"rank"`
	MobileNumber           string  `json:"mobile_number"`
	Education              *string `json:"education,omitempty"`
	DateOfBirth            *string `json:"date_of_birth,omitempty"`
	DateOfJoining          *string `json:"date_of_joining,omitempty"`
	BloodGroup             *string `json:"blood_group,omitempty"`
	Nominee                *string `json:"nominee,omitempty"`
	HomeAddress            *string `json:"home_address,omitempty"`
	CurrentPostingDistrict *string `json:"current_posting_district,omitempty"`
	PhotoURL               *string `json:"photo_url,omitempty"`
	ToliNo                 *string `json:"toli_no,omitempty"`
	ChestNo                *string `json:"chest_no,omitempty"`
	ArrivalDate            *string `json:"arrival_date,omitempty"`
	DepartureDate          *string `json:"departure_date,omitempty"`
	ClassNo                *string `json:"class_no,omitempty"`
	ClassSubject           *string `json:"class_subject,omitempty"`
}

func (r *CreatePersonnelRequest) Validate(ptype Type) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PNO) {
		errs = append(errs, validator.ValidationError{
			Field:   "pno",
			Message: "pno is required",
		})
	} else if !validator.IsValidPNO(r.PNO) {
		errs = append(errs, validator.ValidationError{
			Field:   "pno",
			Message: "pno must be 2-15 digits with an optional cadre letter",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Rank) {
		errs = append(errs, validator.ValidationError{
			Field:   "rank",
			Message: "rank is required",
		})
	}

	if !validator.IsEmpty(r.MobileNumber) && !validator.IsValidMobileNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile_number must be a valid 10-digit number",
		})
	}

	if r.BloodGroup != nil && !validator.IsEmpty(*r.BloodGroup) && !validator.IsValidBloodGroup(*r.BloodGroup) {
		errs = append(errs, validator.ValidationError{
			Field:   "blood_group",
			Message: "blood_group must be one of A+, A-, B+, B-, AB+, AB-, O+, O-",
		})
	}

	if ptype == TypeTrainee {
		if r.ChestNo == nil || validator.IsEmpty(*r.ChestNo) {
			errs = append(errs, validator.ValidationError{
				Field:   "chest_no",
				Message: "chest_no is required for trainees",
			})
		} else if !validator.IsValidChestNo(*r.ChestNo) {
			errs = append(errs, validator.ValidationError{
				Field:   "chest_no",
				Message: "chest_no must be 1-5 digits",
			})
		}
	}

	for field, value := range map[string]*string{
		"date_of_birth":   r.DateOfBirth,
		"date_of_joining": r.DateOfJoining,
		"arrival_date":    r.ArrivalDate,
		"departure_date":  r.DepartureDate,
	} {
		if value == nil || validator.IsEmpty(*value) {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePersonnelRequest struct {
	Name                   string  `json:"name"`
	FatherName             string  `json:"father_name"`
	Rank                   string  `json:"rank"`
	MobileNumber           string  `json:"mobile_number"`
	Education              *string `json:"education,omitempty"`
	DateOfBirth            *string `json:"date_of_birth,omitempty"`
	DateOfJoining          *string `json:"date_of_joining,omitempty"`
	BloodGroup             *string `json:"blood_group,omitempty"`
	Nominee                *string `json:"nominee,omitempty"`
	HomeAddress            *string `json:"home_address,omitempty"`
	CurrentPostingDistrict *string `json:"current_posting_district,omitempty"`
	PhotoURL               *string `json:"photo_url,omitempty"`
	ToliNo                 *string `json:"toli_no,omitempty"`
	ChestNo                *string `json:"chest_no,omitempty"`
	ArrivalDate            *string `json:"arrival_date,omitempty"`
	DepartureDate          *string `json:"departure_date,omitempty"`
	ClassNo                *string `json:"class_no,omitempty"`
	ClassSubject           *string `json:"class_subject,omitempty"`
}

func (r *UpdatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Rank) {
		errs = append(errs, validator.ValidationError{
			Field:   "rank",
			Message: "rank is required",
		})
	}

	if !validator.IsEmpty(r.MobileNumber) && !validator.IsValidMobileNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile_number must be a valid 10-digit number",
		})
	}

	if r.BloodGroup != nil && !validator.IsEmpty(*r.BloodGroup) && !validator.IsValidBloodGroup(*r.BloodGroup) {
		errs = append(errs, validator.ValidationError{
			Field:   "blood_group",
			Message: "blood_group must be one of A+, A-, B+, B-, AB+, AB-, O+, O-",
		})
	}

	for field, value := range map[string]*string{
		"date_of_birth":   r.DateOfBirth,
		"date_of_joining": r.DateOfJoining,
		"arrival_date":    r.ArrivalDate,
		"departure_date":  r.DepartureDate,
	} {
		if value == nil || validator.IsEmpty(*value) {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
