package state

import "errors"

var (
	ErrSessionNotFound    = errors.New("dashboard session not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrForumNotFound      = errors.New("forum not found")
	ErrCommissionNotFound = errors.New("commission request not found")
	// ErrCommissionResolved guards the terminal commission states: once a
	// request is accepted or rejected there is no path back.
	ErrCommissionResolved = errors.New("commission request already resolved")
)

// NoticeError is a rejected-but-harmless outcome: the requested change was a
// duplicate, state is unchanged, and Message is shown to the user verbatim.
type NoticeError struct {
	Message string
}

func (e *NoticeError) Error() string {
	return e.Message
}

// IsNotice reports whether err is a user-facing duplicate notice.
func IsNotice(err error) bool {
	var notice *NoticeError
	return errors.As(err, &notice)
}
