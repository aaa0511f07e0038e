// Package dto defines the HTTP form objects for the intake feature.
package dto

import (
	"strings"

	"realty_backend/internal/feature/intake/usecase"
)

// ApplicationForm is the rental application form as submitted.
type ApplicationForm struct {
	FullName string `form:"full_name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	MoveIn   string `form:"move_in"`
	Message  string `form:"message"`
}

// Validate trims all fields and checks the mandatory ones.
// The returned map is keyed by field name; a non-empty map means the input
// must not be used.
func (f *ApplicationForm) Validate() (usecase.ApplicationInput, map[string]string) {
	errs := map[string]string{}
	in := usecase.ApplicationInput{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		MoveIn:   strings.TrimSpace(f.MoveIn),
		Message:  strings.TrimSpace(f.Message),
	}

	if in.FullName == "" {
		errs["full_name"] = "Full name is required."
	}
	if in.Email == "" {
		errs["email"] = "Email is required."
	}
	if in.Phone == "" {
		errs["phone"] = "Phone is required."
	}
	return in, errs
}

// InquiryForm is the general contact form as submitted.
type InquiryForm struct {
	FullName string `form:"full_name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Subject  string `form:"subject"`
	Message  string `form:"message"`
}

// Validate trims all fields and checks the mandatory ones.
func (f *InquiryForm) Validate() (usecase.InquiryInput, map[string]string) {
	errs := map[string]string{}
	in := usecase.InquiryInput{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		Subject:  strings.TrimSpace(f.Subject),
		Message:  strings.TrimSpace(f.Message),
	}

	if in.FullName == "" {
		errs["full_name"] = "Full name is required."
	}
	if in.Email == "" {
		errs["email"] = "Email is required."
	}
	if in.Subject == "" {
		errs["subject"] = "Subject is required."
	}
	if in.Message == "" {
		errs["message"] = "Message is required."
	}
	return in, errs
}
