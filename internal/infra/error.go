package infra

import (
	"errors"

	"dealhub/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr tags a storage error with a kind; KindDBFailure when none is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound        RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure       RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey    RepositoryErrorKind = "DUPLICATE_KEY"
	KindCheckViolated   RepositoryErrorKind = "CHECK_VIOLATED"
	KindCorruptedRecord RepositoryErrorKind = "CORRUPTED_RECORD"
)
