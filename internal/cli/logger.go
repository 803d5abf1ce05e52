package cli

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/orm/logger"
	"gorm.io/orm/utils"
)

// Backends the supported values of the logger backend setting
var Backends = []string{"default", "zap", "zerolog", "logrus", "slog"}

// NewLogger builds the logger described by cfg writing to out
func NewLogger(cfg LoggerConfig, out io.Writer) (logger.Interface, error) {
	backend := strings.ToLower(cfg.Backend)
	if backend == "" {
		backend = "default"
	}

	if !utils.Contains(Backends, backend) {
		return nil, fmt.Errorf("unsupported logger backend %q, must be one of %v", cfg.Backend, Backends)
	}

	level, err := logger.ParseLevel(cfg.Level, logger.DefaultLogLevel)
	if err != nil {
		return nil, err
	}

	config := logger.Config{
		SlowThreshold:        cfg.SlowThreshold,
		Colorful:             cfg.Colorful,
		ParameterizedQueries: cfg.Parameterized,
		LogLevel:             level,
	}

	switch backend {
	case "zap":
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(out), logger.ZapLevel(level))
		return logger.NewZapLogger(zap.New(core), config), nil
	case "zerolog":
		return logger.NewZerologLoggerWithConfig(config, out), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logger.LogrusLevel(level))
		return logger.NewLogrusLogger(l, config), nil
	case "slog":
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(out, nil)), config), nil
	}
	return logger.New(log.New(out, "\r\n", log.LstdFlags), config), nil
}
