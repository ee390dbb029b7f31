// Package debug は共有ロガーを提供する。出力先は stderr
// （stdout は対局プロトコルに使うため）
package debug

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Logger は構造化ログ用のロガーを返す
func Logger() *logrus.Logger {
	return logger
}

// SetLevel はログレベルを名前で設定する（"debug", "info", "warn" など）
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

// Log はデバッグレベルで出力する
func Log(format string, args ...any) {
	logger.Debugf(format, args...)
}
