package usecase

import (
	"errors"
	"strings"
	"time"

	"clinica-ginecologica/internal/converter"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errors shared by several usecases
var (
	ErrForbidden         = errors.New("record belongs to another patient")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

const inputTimeLayout = "15:04"

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint containing the specified name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// parseCalendarDate parses a YYYY-MM-DD value for a date-only column (UTC midnight).
func parseCalendarDate(value string) (time.Time, error) {
	t, err := time.Parse(converter.InputDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// calendarToday is the clinic's current date as a date-only value (UTC midnight).
func calendarToday(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// parseLocalDateTime combines a YYYY-MM-DD date and an HH:MM time in the clinic location.
func parseLocalDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(converter.InputDateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	hm, err := time.Parse(inputTimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
