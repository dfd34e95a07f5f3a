package utils

import (
	"log/slog"
)

func Loge(e error, args ...any) {
	if e != nil {
		slog.Error("", append(args, "error", e)...)
	}
}

func Logwe(e error, args ...any) {
	if e != nil {
		slog.Warn("", append(args, "error", e)...)
	}
}

func Logde(e error, args ...any) {
	if e != nil {
		slog.Debug("", append(args, "error", e)...)
	}
}
