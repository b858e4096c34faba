package arena

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// NewLogger returns a logger whose prefix carries the short match id.
func NewLogger(id uuid.UUID, out io.Writer) *log.Logger {
	if out == nil {
		out = os.Stderr
	}
	return log.New(out, fmt.Sprintf("arena[%s] ", id.String()[:8]), log.LstdFlags|log.Lmsgprefix)
}
