package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidTick        = errors.New("console tick must be greater than 0")
	ErrInvalidBusBuffer   = errors.New("bus buffer must be greater than 0")
	ErrInvalidDebounce    = errors.New("fixtures debounce must be greater than 0")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidFilterGlob  = errors.New("invalid fleet filter pattern")
	ErrFixturesPathNeeded = errors.New("fixtures file is required when watch is enabled")

	ErrFailedToReadFixtures  = errors.New("failed to read fixtures file")
	ErrFailedToParseFixtures = errors.New("failed to parse fixtures file")
	ErrInvalidFixture        = errors.New("invalid fixture")

	ErrInvalidRobotStatus  = errors.New("invalid robot status")
	ErrInvalidSafetyStatus = errors.New("invalid safety status")
	ErrMissionNotFound     = errors.New("mission not found")

	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrNoRobotSelected   = errors.New("no robot selected")
	ErrNotOnMissionLog   = errors.New("missions can only be selected on the mission log")
	ErrRobotUnavailable  = errors.New("robot is not available for connection")

	ErrUnknownCommand    = errors.New("unknown command")
	ErrFileAlreadyExists = errors.New("file already exists, use --force to overwrite")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
