package client

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

const minPasswordLen = 6

var (
	errNameRequired     = errors.New("name is required")
	errEmailRequired    = errors.New("email is required")
	errPasswordRequired = errors.New("password is required")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
	errPasswordMismatch = errors.New("passwords do not match")
)

func validateLogin(email, password string) error {
	var errs *multierror.Error
	if email == "" {
		errs = multierror.Append(errs, errEmailRequired)
	}
	if password == "" {
		errs = multierror.Append(errs, errPasswordRequired)
	}
	return errs.ErrorOrNil()
}

func validateRegister(in RegisterInput) error {
	var errs *multierror.Error
	if in.Name == "" {
		errs = multierror.Append(errs, errNameRequired)
	}
	if in.Email == "" {
		errs = multierror.Append(errs, errEmailRequired)
	}
	switch {
	case in.Password == "":
		errs = multierror.Append(errs, errPasswordRequired)
	case len(in.Password) < minPasswordLen:
		errs = multierror.Append(errs, errPasswordTooShort)
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		errs = multierror.Append(errs, errPasswordMismatch)
	}
	return errs.ErrorOrNil()
}
