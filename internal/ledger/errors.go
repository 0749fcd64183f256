package ledger

import "errors"

var (
	ErrDuplicateGroup = errors.New("group already exists")
	ErrDuplicateUser  = errors.New("user already exists")
	ErrNoSuchGroup    = errors.New("group does not exist")
	ErrNoSuchUser     = errors.New("user does not exist")
	ErrEmptyRegistry  = errors.New("group has no users")
)
