package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoadmapNotFound    = errors.New("roadmap not found")

	// Generation pipeline failures. The AI controller maps these to the
	// endpoint's status contract.
	ErrUpstream         = errors.New("upstream error")
	ErrUpstreamTimeout  = errors.New("upstream timeout")
	ErrInvalidModelJSON = errors.New("invalid JSON from model")
	ErrFailedValidation = errors.New("response failed validation")
	ErrNotConfigured    = errors.New("server not configured")
)
