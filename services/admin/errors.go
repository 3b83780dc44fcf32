package admin

import "errors"

// Kind classifies domain errors.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
)

// Messages reported to the admin panel.
const (
	MsgInvalidCredentials  = "Invalid credentials"
	MsgMissingDetails      = "Missing Details"
	MsgWeakPassword        = "Please enter a strong password"
	MsgImageRequired       = "Image is required"
	MsgInvalidFees         = "Fees must be a number"
	MsgInvalidPassword     = "Password must be a non-empty string"
	MsgInvalidField        = "Invalid value for "
	MsgInvalidUpdate       = "Invalid update"
	MsgAppointmentNotFound = "Appointment not found"
	MsgInvalidStatus       = "Invalid status"
	MsgInvalidStatusValue  = "Invalid status value"
	MsgTurfNotFound        = "Turf not found"
	MsgDoctorNotFound      = "Doctor not found"
	MsgUserNotFound        = "User not found"
)

// Error is a business-rule rejection. It is reported to the caller as a
// failure envelope rather than treated as an infrastructure fault.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// IsDomain reports whether err is a domain error of any kind.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsValidation reports whether err is a validation domain error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}
