package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user does not exist")
	ErrCompanyNotFound      = errors.New("company does not exist")
	ErrMemberNotFound       = errors.New("member not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrEmailRegistered    = errors.New("the email is already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrPermissionDenied   = errors.New("permission denied")

	// Submission validation, surfaced verbatim to the caller.
	ErrNotAllAnswered = errors.New("not all questions were answered")

	ErrTooFewQuestions    = errors.New("quiz must include at least 2 questions")
	ErrTooFewOptions      = errors.New("question must include at least 2 answer options")
	ErrAnswerNotInOptions = errors.New("correct answer must be one of the answer options")
	ErrStatusResolved     = errors.New("status has already been resolved")
	ErrNoResults          = errors.New("no results recorded yet")
)
