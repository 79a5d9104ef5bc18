package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// newSession creates the request's scratch directory under paths.temp.
func (p *implProcessor) newSession(ctx context.Context) (*Session, error) {
	id := uuid.New().String()[:8]
	dir := filepath.Join(p.cfg.Paths.Temp, "session_"+id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	p.logger.Debug(ctx, "Created session %s: %s", id, dir)
	return &Session{ID: id, Dir: dir}, nil
}

// cleanupSession removes the session directory, logs warning if fails
func (p *implProcessor) cleanupSession(ctx context.Context, s *Session) {
	if err := os.RemoveAll(s.Dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup session dir %s: %v", s.Dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up session dir: %s", s.Dir)
	}
}
