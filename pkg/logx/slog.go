package logx

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Dump masks b and cuts it to maxLen bytes (0 keeps everything). Masking runs
// first: a secret cut in half would no longer match its pattern.
func Dump(masker SensitiveDataMaskerInterface, b []byte, maxLen int) string {
	b = masker.Mask(b)

	if maxLen > 0 && len(b) > maxLen {
		b = b[:maxLen]
	}

	return string(b)
}
