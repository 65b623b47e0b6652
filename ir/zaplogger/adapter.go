package zaplogger

import (
	"go.uber.org/zap"

	"github.com/teranos/bindgen/ir"
)

// ZapAdapter adapts zap.SugaredLogger to implement the ir.Logger
// interface. This allows generator hosts to use zap while the IR
// library remains logger-agnostic.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a logger adapter from a zap SugaredLogger.
func NewZapAdapter(zapLogger *zap.SugaredLogger) ir.Logger {
	if zapLogger == nil {
		return ir.NewNopLogger()
	}
	return &ZapAdapter{logger: zapLogger}
}

// Info implements ir.Logger.Info using zap's Infow.
func (z *ZapAdapter) Info(msg string, fields ...interface{}) {
	z.logger.Infow(msg, fields...)
}

// Warn implements ir.Logger.Warn using zap's Warnw.
func (z *ZapAdapter) Warn(msg string, fields ...interface{}) {
	z.logger.Warnw(msg, fields...)
}

// Error implements ir.Logger.Error using zap's Errorw.
func (z *ZapAdapter) Error(msg string, fields ...interface{}) {
	z.logger.Errorw(msg, fields...)
}
