package validator

import "testing"

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Rating   int    `validate:"gte=1,lte=5"`
	UserType string `validate:"required,oneof=PATIENT STUDENT"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "maria.gonzalez@email.com",
		Password: "password123",
		Rating:   5,
		UserType: "PATIENT",
	})
	if err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Rating:   9,
		UserType: "ADMIN",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	details := cv.FormatValidationErrors(err)
	if details["Email"] != "Email must be a valid email address" {
		t.Errorf("Email detail = %q", details["Email"])
	}
	if details["Password"] != "Password must be at least 8" {
		t.Errorf("Password detail = %q", details["Password"])
	}
	if details["Rating"] != "Rating must be less than or equal to 5" {
		t.Errorf("Rating detail = %q", details["Rating"])
	}
	if details["UserType"] != "UserType must be one of: PATIENT STUDENT" {
		t.Errorf("UserType detail = %q", details["UserType"])
	}
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Rating: 3})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	details := cv.FormatValidationErrors(err)
	if details["Email"] != "Email is required" {
		t.Errorf("Email detail = %q", details["Email"])
	}
}
