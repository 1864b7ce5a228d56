// Package logger содержит общий логгер для обоих обработчиков (auth и reminder).
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и метод для логирования результата одной операции.
// В stdout логгер не пишет никогда: stdout занят JSON-ответом обработчика.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger представляет обёртку над zap.Logger для логирования операций обработчиков.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// Options описывает куда и как писать лог.
type Options struct {
	// Dir — каталог для лог-файлов, по умолчанию runtime/logs.
	Dir string
	// File — имя файла внутри Dir (например "auth.log").
	File string
	// Level — debug|info|warn|error.
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New создаёт файловый zap-логгер.
//
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(opts Options) (*Logger, error) {
	if opts.Dir == "" {
		opts.Dir = filepath.Join("runtime", "logs")
	}
	if opts.File == "" {
		opts.File = "medkeeper.log"
	}

	level := zap.InfoLevel
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = lvl
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.File),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		level,
	)

	return Wrap(zap.New(core, zap.AddCaller())), nil
}

// Wrap оборачивает готовый zap.Logger (удобно в тестах: zap.NewNop, observer).
func Wrap(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{Logger: l}
}

// Nop возвращает логгер, который ничего не пишет.
func Nop() *Logger {
	return Wrap(zap.NewNop())
}

// LogOperation записывает структурированный лог об одном вызове обработчика.
//
// handler — auth|reminder, action — signup|login|submit,
// kind — вид ошибки (пусто при успехе), duration — длительность в миллисекундах.
func (l *Logger) LogOperation(handler, action string, success bool, kind string, duration float64) {
	fields := []zap.Field{
		zap.String("handler", handler),
		zap.String("action", action),
		zap.Bool("success", success),
		zap.Float64("duration_ms", duration),
	}
	if kind != "" {
		fields = append(fields, zap.String("kind", kind))
	}

	if success {
		l.Info("operation", fields...)
		return
	}
	l.Warn("operation", fields...)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
