package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidMobile   = errors.New("invalid mobile number")
	ErrInvalidPAN      = errors.New("invalid PAN")
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidAAHandle = errors.New("invalid account aggregator handle")
	ErrInvalidDOB      = errors.New("invalid date of birth")
	ErrInvalidPincode  = errors.New("invalid pincode")
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobileRegex   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	panRegex      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pinRegex      = regexp.MustCompile(`^[0-9]{4,6}$`)
	pincodeRegex  = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	aaHandleRegex = regexp.MustCompile(`^[6-9][0-9]{9}@[a-z]+$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateMobile(mobile string) error {
	if !mobileRegex.MatchString(mobile) {
		return ErrInvalidMobile
	}
	return nil
}

func ValidatePAN(pan string) error {
	if !panRegex.MatchString(pan) {
		return ErrInvalidPAN
	}
	return nil
}

func ValidatePIN(pin string) error {
	if !pinRegex.MatchString(pin) {
		return ErrInvalidPIN
	}
	return nil
}

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return ErrInvalidName
	}
	return nil
}

func ValidateAAHandle(handle string) error {
	if !aaHandleRegex.MatchString(handle) {
		return ErrInvalidAAHandle
	}
	return nil
}

func ValidatePincode(pincode string) error {
	if !pincodeRegex.MatchString(pincode) {
		return ErrInvalidPincode
	}
	return nil
}

// ParseDOB accepts YYYY-MM-DD and rejects dates in the future.
func ParseDOB(raw string, now time.Time) (time.Time, error) {
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil || dob.After(now) {
		return time.Time{}, ErrInvalidDOB
	}
	return dob, nil
}
