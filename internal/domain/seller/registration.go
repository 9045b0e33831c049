package seller

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fixed-pattern rules for Indian tax identifiers. These mirror the
// backend's registration checks so malformed submissions are rejected
// before any network call is made.
var (
	gstPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// MaxProfileImageBytes is the registration photo size limit (1MB).
const MaxProfileImageBytes = 1 << 20

// Registration is a new seller signup. ProfileImage is optional and rides
// along as a multipart part; everything else is a plain form field.
type Registration struct {
	Name         string     `json:"name" validate:"required,min=3"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8,strongpassword"`
	StoreName    string     `json:"storeName" validate:"required"`
	Phone        string     `json:"phone" validate:"required,inphone"`
	Address      string     `json:"address" validate:"required"`
	GSTNumber    string     `json:"gstNumber" validate:"required,gst"`
	PANNumber    string     `json:"panNumber" validate:"required,pan"`
	BusinessType string     `json:"businessType" validate:"required,oneof=individual company Manufacturer partnership"`
	Terms        bool       `json:"terms" validate:"required"`
	ProfileImage *ImageFile `json:"-"`
}

var registrationValidator = newRegistrationValidator()

func newRegistrationValidator() *validator.Validate {
	v := validator.New()
	// Report errors under JSON field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("gst", func(fl validator.FieldLevel) bool {
		return gstPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		var lower, upper, digit, special bool
		for _, r := range s {
			switch {
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= '0' && r <= '9':
				digit = true
			case strings.ContainsRune("@$!%*?&", r):
				special = true
			}
		}
		return lower && upper && digit && special
	})
	return v
}

// Validate checks the registration entirely client-side. It returns a
// *ValidationError listing every rejected field, or nil when the form may
// be submitted.
func (r *Registration) Validate() error {
	var fields []FieldError

	if err := registrationValidator.Struct(r); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, e := range verrs {
			fields = append(fields, FieldError{
				Field:   e.Field(),
				Message: registrationMessage(e),
			})
		}
	}

	if img := r.ProfileImage; img != nil {
		switch img.ContentType {
		case "image/jpeg", "image/jpg", "image/png":
		default:
			fields = append(fields, FieldError{Field: "profileImage", Message: "Only JPG/PNG images allowed"})
		}
		if len(img.Data) > MaxProfileImageBytes {
			fields = append(fields, FieldError{Field: "profileImage", Message: "Image size must be less than 1MB"})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// registrationMessage returns the human-readable message for a failed rule.
func registrationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if e.Field() == "terms" {
			return "You must accept the terms and conditions"
		}
		return "This field is required"
	case "min":
		return "Must be at least " + e.Param() + " characters"
	case "email":
		return "Invalid email format"
	case "strongpassword":
		return "Must include uppercase, lowercase, number & special character"
	case "inphone":
		return "Invalid phone number (10 digits)"
	case "gst":
		return "Invalid GST format"
	case "pan":
		return "Invalid PAN format"
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return "Invalid value"
	}
}
