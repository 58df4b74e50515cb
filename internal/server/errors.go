package server

import "errors"

var (
	errNoServerAddress = errors.New("no server address is configured")
)
