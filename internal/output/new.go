package output

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

type implWriter struct {
	logger logger.Logger
	docx   bool
}

// New creates a Writer. DOCX rendering failures are logged, not returned.
func New(log logger.Logger) Writer {
	return &implWriter{logger: log, docx: true}
}

func (w *implWriter) warn(format string, args ...interface{}) {
	w.logger.Warn(context.Background(), format, args...)
}
