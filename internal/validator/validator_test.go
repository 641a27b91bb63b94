package validator

import (
	"errors"
	"testing"
	"time"
)

func TestValidators(t *testing.T) {
	cases := []struct {
		name  string
		fn    func(string) error
		value string
		want  error
	}{
		{"email ok", ValidateEmail, "ravi.kumar@gmail.com", nil},
		{"email bad", ValidateEmail, "ravi.kumar", ErrInvalidEmail},
		{"mobile ok", ValidateMobile, "9876543210", nil},
		{"mobile leading five", ValidateMobile, "5876543210", ErrInvalidMobile},
		{"mobile short", ValidateMobile, "987654321", ErrInvalidMobile},
		{"pan ok", ValidatePAN, "ABCDE1234F", nil},
		{"pan lowercase", ValidatePAN, "abcde1234f", ErrInvalidPAN},
		{"pin ok", ValidatePIN, "1234", nil},
		{"pin letters", ValidatePIN, "12a4", ErrInvalidPIN},
		{"pin short", ValidatePIN, "123", ErrInvalidPIN},
		{"name ok", ValidateName, "Ravi Kumar", nil},
		{"name blank", ValidateName, "  ", ErrInvalidName},
		{"handle ok", ValidateAAHandle, "9876543210@anumati", nil},
		{"handle bad", ValidateAAHandle, "ravi@anumati", ErrInvalidAAHandle},
		{"pincode ok", ValidatePincode, "560001", nil},
		{"pincode zero", ValidatePincode, "060001", ErrInvalidPincode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(tc.value); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseDOB(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	dob, err := ParseDOB("1990-05-17", now)
	if err != nil || dob.Year() != 1990 {
		t.Fatalf("unexpected result: %v %v", dob, err)
	}
	if _, err := ParseDOB("2030-01-01", now); !errors.Is(err, ErrInvalidDOB) {
		t.Fatalf("expected ErrInvalidDOB for future date, got %v", err)
	}
	if _, err := ParseDOB("17/05/1990", now); !errors.Is(err, ErrInvalidDOB) {
		t.Fatalf("expected ErrInvalidDOB for bad format, got %v", err)
	}
}
