package seller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() Registration {
	return Registration{
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		Password:     "Str0ng@Pass",
		StoreName:    "Verma Traders",
		Phone:        "9876543210",
		Address:      "14 MG Road, Pune",
		GSTNumber:    "22AAAAA0000A1Z5",
		PANNumber:    "ABCDE1234F",
		BusinessType: "individual",
		Terms:        true,
	}
}

func TestRegistration_Validate(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		form := validRegistration()
		assert.NoError(t, form.Validate())
	})

	t.Run("valid form with profile image passes", func(t *testing.T) {
		form := validRegistration()
		form.ProfileImage = &ImageFile{
			Name:        "me.png",
			ContentType: "image/png",
			Data:        []byte("pngdata"),
		}
		assert.NoError(t, form.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(r *Registration)
		field   string
		message string
	}{
		{
			name:    "malformed gst",
			mutate:  func(r *Registration) { r.GSTNumber = "1234" },
			field:   "gstNumber",
			message: "Invalid GST format",
		},
		{
			name:    "lowercase gst",
			mutate:  func(r *Registration) { r.GSTNumber = "22aaaaa0000a1z5" },
			field:   "gstNumber",
			message: "Invalid GST format",
		},
		{
			name:    "malformed pan",
			mutate:  func(r *Registration) { r.PANNumber = "1234F" },
			field:   "panNumber",
			message: "Invalid PAN format",
		},
		{
			name:    "short phone",
			mutate:  func(r *Registration) { r.Phone = "98765" },
			field:   "phone",
			message: "Invalid phone number (10 digits)",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *Registration) { r.Phone = "98765abcde" },
			field:   "phone",
			message: "Invalid phone number (10 digits)",
		},
		{
			name:    "weak password",
			mutate:  func(r *Registration) { r.Password = "alllowercase1" },
			field:   "password",
			message: "Must include uppercase, lowercase, number & special character",
		},
		{
			name:    "short password",
			mutate:  func(r *Registration) { r.Password = "S1@a" },
			field:   "password",
			message: "Must be at least 8 characters",
		},
		{
			name:    "invalid email",
			mutate:  func(r *Registration) { r.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "short name",
			mutate:  func(r *Registration) { r.Name = "Al" },
			field:   "name",
			message: "Must be at least 3 characters",
		},
		{
			name:    "missing store name",
			mutate:  func(r *Registration) { r.StoreName = "" },
			field:   "storeName",
			message: "This field is required",
		},
		{
			name:    "unknown business type",
			mutate:  func(r *Registration) { r.BusinessType = "conglomerate" },
			field:   "businessType",
			message: "Must be one of: individual company Manufacturer partnership",
		},
		{
			name:    "terms not accepted",
			mutate:  func(r *Registration) { r.Terms = false },
			field:   "terms",
			message: "You must accept the terms and conditions",
		},
		{
			name: "oversized profile image",
			mutate: func(r *Registration) {
				r.ProfileImage = &ImageFile{
					Name:        "big.png",
					ContentType: "image/png",
					Data:        bytes.Repeat([]byte{0xff}, MaxProfileImageBytes+1),
				}
			},
			field:   "profileImage",
			message: "Image size must be less than 1MB",
		},
		{
			name: "unsupported image type",
			mutate: func(r *Registration) {
				r.ProfileImage = &ImageFile{
					Name:        "me.gif",
					ContentType: "image/gif",
					Data:        []byte("gifdata"),
				}
			},
			field:   "profileImage",
			message: "Only JPG/PNG images allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			tt.mutate(&form)

			err := form.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.FieldFor(tt.field))

			// Only the mutated field is rejected
			require.Len(t, verr.Fields, 1)
		})
	}
}

func TestRegistration_Validate_CollectsAllFailures(t *testing.T) {
	form := validRegistration()
	form.GSTNumber = "bad"
	form.PANNumber = "bad"
	form.Phone = "bad"

	err := form.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.NotEmpty(t, verr.FieldFor("gstNumber"))
	assert.NotEmpty(t, verr.FieldFor("panNumber"))
	assert.NotEmpty(t, verr.FieldFor("phone"))
	assert.Empty(t, verr.FieldFor("email"))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "gstNumber", Message: "Invalid GST format"},
	}}
	assert.Contains(t, err.Error(), "gstNumber: Invalid GST format")

	empty := &ValidationError{}
	assert.Equal(t, ErrValidation.Error(), empty.Error())
}
