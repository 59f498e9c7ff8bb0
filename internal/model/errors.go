package model

import "errors"

var (
	ErrConfiguration  = errors.New("configuration error")
	ErrParse          = errors.New("parse error")
	ErrTransport      = errors.New("transport error")
	ErrClassification = errors.New("classification error")
)
