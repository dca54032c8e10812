package shell

import "errors"

var (
	ErrQuit           = errors.New("quit")
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownView    = errors.New("unknown view")
)
