package commands

import (
	"fmt"
	"os"
	"strings"

	"teamboard/internal/errors"
	"teamboard/internal/logger"
)

// HandleError processes errors and provides user-friendly output
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	if te, ok := errors.As(err); ok {
		logger.WithError(err).Debug("Command failed")

		switch te.Code {
		case errors.ErrConfigInvalid, errors.ErrConfigParse:
			return fmt.Errorf("%v\n\nTip: check TEAMBOARD_* variables and the file named by TEAMBOARD_CONFIG.", te)
		case errors.ErrDatabaseConnection:
			return fmt.Errorf("%s\n\nTip: check DATABASE_URL and TEAMBOARD_DATABASE_DRIVER.", te.Message)
		case errors.ErrEmailTaken:
			return fmt.Errorf("%s", te.Message)
		default:
			return err
		}
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "address already in use"):
		return fmt.Errorf("%v\n\nTip: another process holds the port. Pick one with --port.", err)
	case strings.Contains(errStr, "permission denied"):
		return fmt.Errorf("%v\n\nTip: check file permissions of the database directory.", err)
	default:
		return err
	}
}

// ExitOnError handles errors consistently across CLI commands
func ExitOnError(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", HandleError(err))

	if te, ok := errors.As(err); ok {
		switch te.Code {
		case errors.ErrConfigInvalid, errors.ErrConfigParse:
			os.Exit(78) // EX_CONFIG
		case errors.ErrDatabaseConnection:
			os.Exit(69) // EX_UNAVAILABLE
		}
	}
	os.Exit(1)
}
