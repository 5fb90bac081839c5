package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	// 测试与未初始化场景下保持可用
	Logger = zap.NewNop()
}

// InitLogger 初始化全局日志器；debug 模式使用开发配置输出可读日志
func InitLogger(logLevel string, debug bool) {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)
	Logger, _ = config.Build()
}

// Error 返回一个 zap.Field，用于记录错误
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Int 返回一个 zap.Field，用于记录整数
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}
