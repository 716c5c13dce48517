package logger

import (
	"fmt"
	"io"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// fileMaxAge is how long rotated log files are kept.
	fileMaxAge = 7 * 24 * time.Hour
	// fileRotationTime is how often a new log file is started.
	fileRotationTime = 24 * time.Hour
)

// NewFile creates a logger writing to a daily rotated file next to path.
// path itself is kept as a link to the newest file.
// The returned closer must be called once logging is finished.
func NewFile(path string, level zapcore.LevelEnabler, options ...zap.Option) (*zap.SugaredLogger, io.Closer, error) {
	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(fileMaxAge),
		rotatelogs.WithRotationTime(fileRotationTime),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	return NewWithSink(zapcore.AddSync(writer), level, options...), writer, nil
}
