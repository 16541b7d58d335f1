package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for components built
// without a logger.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a JSON production logger, or a human-readable development
// logger when appEnv is "local" or empty.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch appEnv {
	case "", "local":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
