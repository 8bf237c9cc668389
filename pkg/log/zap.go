package log

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements Logger on a sugared Zap core writing to stderr.
// The context argument is accepted for call-site uniformity only.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(cfg ZapConfig) *zapLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}

	encCfg.TimeKey = "TIME"
	encCfg.LevelKey = "LEVEL"
	encCfg.NameKey = "NAME"
	encCfg.CallerKey = "CALLER"
	encCfg.MessageKey = "MESSAGE"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}

	if cfg.ColorEnabled && cfg.Encoding == EncodingConsole {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var enc zapcore.Encoder
	if cfg.Encoding == EncodingConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(parseLevel(cfg.Level)))

	return &zapLogger{sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// parseLevel maps a config string to a Zap level, defaulting to debug so
// a misspelled level never silences the process.
func parseLevel(s string) zapcore.Level {
	switch s {
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}

func (l *zapLogger) Debug(_ context.Context, arg ...any) { l.sugar.Debug(arg...) }
func (l *zapLogger) Debugf(_ context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}
func (l *zapLogger) Info(_ context.Context, arg ...any) { l.sugar.Info(arg...) }
func (l *zapLogger) Infof(_ context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}
func (l *zapLogger) Warn(_ context.Context, arg ...any) { l.sugar.Warn(arg...) }
func (l *zapLogger) Warnf(_ context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}
func (l *zapLogger) Error(_ context.Context, arg ...any) { l.sugar.Error(arg...) }
func (l *zapLogger) Errorf(_ context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}
func (l *zapLogger) DPanic(_ context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) DPanicf(_ context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}
func (l *zapLogger) Panic(_ context.Context, arg ...any) { l.sugar.Panic(arg...) }
func (l *zapLogger) Panicf(_ context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
func (l *zapLogger) Fatal(_ context.Context, arg ...any) { l.sugar.Fatal(arg...) }
func (l *zapLogger) Fatalf(_ context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
