package log

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the *log.Logger shared by every component.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
}

// NewLogger creates the application logger. Messages follow the prefix, and
// a prefix of "-" means none.
func NewLogger(prefix string) *log.Logger {
	prefix = strings.TrimSpace(prefix)
	if prefix == "-" {
		prefix = ""
	}
	if prefix != "" {
		prefix += " "
	}
	return log.New(os.Stdout, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(il.Prefix))
	return ctx, nil
}
