package users

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	nameRegex     = regexp.MustCompile(`^[A-Za-z\s,'.]{3,60}$`)
	usernameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{4,31}$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%-]+@[A-Za-z0-9.-]+[.][A-Za-z]+$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10}$`)
)

const (
	maxEmailLength  = 60
	minPasswordSize = 8
)

// ValidationError reports the first invalid field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "name is required")
	}
	if !nameRegex.MatchString(name) {
		return invalid("name", "name must be 3-60 letters, spaces, apostrophes, commas or periods")
	}
	return nil
}

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return invalid("username", "username must be 5-32 lower case letters, digits or underscores, starting with a letter")
	}
	return nil
}

func ValidateEmail(email string) error {
	if len(email) > maxEmailLength || !emailRegex.MatchString(email) {
		return invalid("email", "invalid email address")
	}
	return nil
}

func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return invalid("phone", "phone number must be exactly 10 digits")
	}
	return nil
}

// NormalizeGender validates the gender and returns its canonical lower case form.
func NormalizeGender(gender string) (string, error) {
	g := strings.ToLower(strings.TrimSpace(gender))
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	default:
		return "", invalid("gender", "gender must be one of male, female, other")
	}
}

func ParseDOB(dob string, now time.Time) (time.Time, error) {
	t, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return time.Time{}, invalid("dob", "date of birth must be in YYYY-MM-DD format")
	}
	if t.After(now) {
		return time.Time{}, invalid("dob", "date of birth cannot be in the future")
	}
	return t, nil
}

// ValidatePassword requires at least 8 characters with an upper case letter,
// a lower case letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordSize {
		return invalid("password", fmt.Sprintf("password must be at least %d characters", minPasswordSize))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return invalid("password", "password must contain an upper case letter, a lower case letter and a digit")
	}
	return nil
}

type profileFields struct {
	name, username, email, phone, gender, dob string
}

func (f profileFields) validate(now time.Time) (User, error) {
	if err := ValidateName(f.name); err != nil {
		return User{}, err
	}
	if err := ValidateUsername(f.username); err != nil {
		return User{}, err
	}
	if err := ValidateEmail(f.email); err != nil {
		return User{}, err
	}
	if err := ValidatePhone(f.phone); err != nil {
		return User{}, err
	}
	gender, err := NormalizeGender(f.gender)
	if err != nil {
		return User{}, err
	}
	dob, err := ParseDOB(f.dob, now)
	if err != nil {
		return User{}, err
	}

	return User{
		Name:     strings.TrimSpace(f.name),
		Username: f.username,
		Email:    strings.ToLower(f.email),
		Phone:    f.phone,
		Gender:   gender,
		DOB:      dob,
	}, nil
}

// Validate checks the registration form and returns the user it describes,
// without the password hash.
func (r RegisterRequest) Validate(now time.Time) (User, error) {
	user, err := profileFields{
		name:     r.Name,
		username: r.Username,
		email:    r.Email,
		phone:    r.Phone,
		gender:   r.Gender,
		dob:      r.DOB,
	}.validate(now)
	if err != nil {
		return User{}, err
	}

	if err := ValidatePassword(r.Password); err != nil {
		return User{}, err
	}
	if r.Password != r.ConfirmPassword {
		return User{}, invalid("confirmPassword", "passwords do not match")
	}

	return user, nil
}

func (r UpdateProfileRequest) Validate(now time.Time) (User, error) {
	if r.Password == "" {
		return User{}, invalid("password", "current password is required")
	}
	return profileFields{
		name:     r.Name,
		username: r.Username,
		email:    r.Email,
		phone:    r.Phone,
		gender:   r.Gender,
		dob:      r.DOB,
	}.validate(now)
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return invalid("currentPassword", "current password is required")
	}
	if err := ValidatePassword(r.NewPassword); err != nil {
		return err
	}
	if r.NewPassword != r.ConfirmPassword {
		return invalid("confirmPassword", "passwords do not match")
	}
	if r.NewPassword == r.CurrentPassword {
		return invalid("newPassword", "new password must differ from the current one")
	}
	return nil
}
