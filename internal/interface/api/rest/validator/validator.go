package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-manager-api/internal/interface/api/rest/dto/auth"
	"file-manager-api/internal/interface/api/rest/dto/notification"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxTitleLen   = 200
	maxMessageLen = 5000

	maxListLimit = 100
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidatePositiveInt parses an optional positive query integer, falling
// back to def when empty; values above max are clamped.
func ValidatePositiveInt(s string, def, max int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	if max > 0 && n > max {
		return max, nil
	}
	return n, nil
}

func ValidateSkipLimit(skip, limit string) (int, int, error) {
	s, err := ValidatePositiveInt(skip, 0, 0)
	if err != nil {
		return 0, 0, errors.New("invalid skip")
	}
	l, err := ValidatePositiveInt(limit, maxListLimit, maxListLimit)
	if err != nil {
		return 0, 0, errors.New("invalid limit")
	}
	if l == 0 {
		l = maxListLimit
	}
	return s, l, nil
}

func ValidateFileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("file_name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return "", errors.New("file_name length must be at most 255 characters")
	}
	return name, nil
}

func ValidateNotification(r notification.SendRequest) map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(r.Title)
	message := strings.TrimSpace(r.Message)

	if title == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs["title"] = "title length must be at most 200 characters"
	}

	if message == "" {
		errs["message"] = "message is required"
	} else if utf8.RuneCountInString(message) > maxMessageLen {
		errs["message"] = "message length must be at most 5000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
