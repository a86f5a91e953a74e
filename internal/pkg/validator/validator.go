package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate parses a calendar date in YYYY-MM-DD form.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// PNO: 2-15 digits, optionally suffixed with a single cadre letter,
// e.g. "970213045" or "152230097A".
var pnoRegex = regexp.MustCompile(`^[0-9]{2,15}[A-Z]?$`)

func IsValidPNO(pno string) bool {
	return pnoRegex.MatchString(strings.ToUpper(pno))
}

// Chest numbers are short numeric tags assigned to trainees, 1-5 digits.
func IsValidChestNo(chestNo string) bool {
	return len(chestNo) >= 1 && len(chestNo) <= 5 && IsNumeric(chestNo)
}

// Mobile number validation: 10 digits, or 12 with the 91 country prefix.
func IsValidMobileNumber(mobile string) bool {
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")
	mobile = strings.TrimPrefix(mobile, "+")

	if strings.HasPrefix(mobile, "91") && len(mobile) == 12 {
		mobile = strings.TrimPrefix(mobile, "91")
	}

	return len(mobile) == 10 && IsNumeric(mobile)
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidBloodGroup(bloodGroup string) bool {
	return IsInSlice(strings.ToUpper(strings.TrimSpace(bloodGroup)), bloodGroups)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
