package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/redact"
)

// ConnFn runs against a single dedicated connection.
type ConnFn func(ctx context.Context, conn DBTX) error

// WithConn acquires a connection from db, runs fn on it, and returns the
// connection to the pool on every exit path, including a panic in fn.
// Statements issued by fn share one session, so an insert followed by a
// select of the new row sees a consistent view.
func WithConn(ctx context.Context, db Connector, fn ConnFn) error {
	log := logger.FromContext(ctx)

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire connection", redact.Attr(err))
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	defer func() {
		p := recover()
		if closeErr := conn.Close(); closeErr != nil {
			log.Error("failed to release connection", redact.Attr(closeErr))
		}
		if p != nil {
			log.Error("released connection after panic",
				slog.Any("panic", p))
			// ALLOW-PANIC: Propagating caught panic after releasing the connection
			panic(p)
		}
	}()

	return fn(ctx, conn)
}
