package httperr

import "errors"

// ===============================
// Business error codes
// ===============================

const (
	CodeInvalidWindow        = "invalid_window"
	CodeServiceNotFound      = "service_not_found"
	CodeServiceInactive      = "service_inactive"
	CodeSlotUnavailable      = "slot_unavailable"
	CodeIllegalTransition    = "illegal_transition"
	CodeReservationNotFound  = "reservation_not_found"
	CodeReminderWindowInPast = "reminder_window_in_past"
	CodeStorageUnavailable   = "storage_unavailable"
	CodeBlockNotFound        = "block_not_found"
	CodeInvalidBlockKind     = "invalid_block_kind"
	CodeReminderNotFound     = "reminder_not_found"
)

type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessDetail carrega contexto para o chamador (janela em
// conflito, status atual) sem mudar o código.
func ErrBusinessDetail(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
