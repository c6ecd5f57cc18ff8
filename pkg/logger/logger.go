package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L 全局日志实例
// 设计说明：
// 1. 使用zap结构化日志（替代fmt/log的纯文本输出）
// 2. debug模式下控制台彩色输出，release模式下JSON输出（便于采集到ELK/Loki）
// 3. 业务代码通过logger.L()获取实例，避免到处传递*zap.Logger
var l *zap.Logger = zap.NewNop()

// Init 初始化日志系统
// mode: debug | release | test
func Init(mode string) error {
	var cfg zap.Config

	if mode == "debug" || mode == "" {
		// 开发环境 - 控制台输出
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// 生产环境 - JSON格式
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	l = logger
	return nil
}

// L 获取全局日志实例（Init之前返回Nop，不会panic）
func L() *zap.Logger {
	return l
}

// Sync 刷新日志缓冲区（进程退出前调用）
func Sync() {
	_ = l.Sync()
}
