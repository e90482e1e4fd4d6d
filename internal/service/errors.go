package service

import "github.com/rotisserie/eris"

var (
	ErrSessionNotFound = eris.New("session not found")
	ErrReportNotFound  = eris.New("report not found")
	ErrInvalidBundle   = eris.New("bundle failed schema validation")
)
