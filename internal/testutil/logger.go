package testutil

import (
	"io"

	"github.com/dayboard/dayboard-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
