package proto

import (
	"errors"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

var codeErrors = []struct {
	code Error_Code
	err  error
}{
	{Error_CODE_NODE_NOT_FOUND, zookeeper.ErrNodeNotFound},
	{Error_CODE_NODE_EXISTS, zookeeper.ErrNodeExists},
	{Error_CODE_NO_PARENT, zookeeper.ErrNoParent},
	{Error_CODE_HAS_CHILDREN, zookeeper.ErrHasChildren},
	{Error_CODE_VERSION_CONFLICT, zookeeper.ErrVersionConflict},
	{Error_CODE_SESSION_EXPIRED, zookeeper.ErrSessionExpired},
	{Error_CODE_INVALID_PATH, zookeeper.ErrInvalidPath},
	{Error_CODE_NO_CHILDREN_FOR_EPHEMERALS, zookeeper.ErrNoChildrenForEphemerals},
	{Error_CODE_BAD_REQUEST, zookeeper.ErrBadRequest},
}

// ErrorFor converts err into its wire form. Errors without a code of their
// own travel as CODE_INTERNAL.
func ErrorFor(err error) *Error {
	if err == nil {
		return nil
	}
	for _, ce := range codeErrors {
		if errors.Is(err, ce.err) {
			return &Error{Code: ce.code, Message: err.Error()}
		}
	}
	return &Error{Code: Error_CODE_INTERNAL, Message: err.Error()}
}

// Err converts a wire error back into an error that matches the sentinel of
// its code with errors.Is. A nil or CODE_OK error is nil.
func (x *Error) Err() error {
	if x.GetCode() == Error_CODE_OK {
		return nil
	}
	for _, ce := range codeErrors {
		if ce.code == x.GetCode() {
			return &remoteError{sentinel: ce.err, msg: x.GetMessage()}
		}
	}
	return &remoteError{msg: x.GetMessage()}
}

type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.sentinel != nil {
		return e.sentinel.Error()
	}
	return "zk: internal server error"
}

func (e *remoteError) Unwrap() error {
	return e.sentinel
}
