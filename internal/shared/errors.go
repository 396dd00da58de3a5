package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrExchangeFailed  = fmt.Errorf("code exchange failed")
	ErrUnauthenticated = fmt.Errorf("not authenticated")
	ErrTimeout         = fmt.Errorf("operation timed out")

	// Room lifecycle errors
	ErrRoomNotFound     = fmt.Errorf("room not found")
	ErrRoomActive       = fmt.Errorf("another room is already active")
	ErrCreateFailed     = fmt.Errorf("room creation failed")
	ErrCloseFailed      = fmt.Errorf("room close failed")
	ErrNotHost          = fmt.Errorf("only the room host may do this")
	ErrUnexpectedStatus = fmt.Errorf("unexpected backend status")

	// Queue and search errors
	ErrSearchFailed       = fmt.Errorf("track search failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
