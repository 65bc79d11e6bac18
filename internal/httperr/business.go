package httperr

import "errors"

// BusinessError carries a stable rule-violation code from usecases up to the
// handler boundary, where it is mapped to an HTTP status and a user-facing
// message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
