package domain

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPage        = errors.New("page index out of range")
	ErrInvalidSort        = errors.New("unknown sort field")
)
