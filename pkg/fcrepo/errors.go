package fcrepo

import "errors"

var ErrUnexpectedStatus = errors.New("fcrepo: unexpected status")
