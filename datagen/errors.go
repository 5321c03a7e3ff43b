package datagen

import "github.com/pingcap/errors"

// Error kinds returned by the generator. Test for them with the Is* helpers,
// the returned errors carry extra context around these causes.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDomainExhausted     = errors.New("domain exhausted")
	ErrCollaboratorFailure = errors.New("text generator failure")
)

func IsInvalidInput(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidInput
}

func IsDomainExhausted(err error) bool {
	return err != nil && errors.Cause(err) == ErrDomainExhausted
}

func IsCollaboratorFailure(err error) bool {
	return err != nil && errors.Cause(err) == ErrCollaboratorFailure
}
