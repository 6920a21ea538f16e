package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/baccarat-tracker/internal/adapters/jsonview"
	"github.com/bnema/baccarat-tracker/internal/adapters/render/report"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
)

type Format string

const (
	FormatStyled Format = "styled"
	FormatPlain  Format = "plain"
	FormatJSON   Format = "json"
)

type Options struct {
	Format       Format
	ShowKeyboard bool
}

// Notifier writes each reply to an io.Writer, one block per reply.
type Notifier struct {
	mu   sync.Mutex
	out  io.Writer
	opts Options
}

var _ ports.Notifier = (*Notifier)(nil)

func New(out io.Writer, opts Options) *Notifier {
	if opts.Format == "" {
		opts.Format = FormatStyled
	}
	return &Notifier{out: out, opts: opts}
}

func (n *Notifier) Notify(ctx context.Context, key domain.SessionKey, reply ports.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.opts.Format == FormatJSON {
		if err := json.NewEncoder(n.out).Encode(jsonview.FromReply(reply)); err != nil {
			return fmt.Errorf("encode %s reply: %w", reply.Kind, err)
		}
		return nil
	}

	rendered, err := report.Render(reply, report.RenderOptions{
		Plain:        n.opts.Format == FormatPlain,
		ShowKeyboard: n.opts.ShowKeyboard,
	})
	if err != nil {
		return fmt.Errorf("render %s reply: %w", reply.Kind, err)
	}

	if _, err := fmt.Fprintln(n.out, strings.TrimRight(rendered, "\n")); err != nil {
		return fmt.Errorf("write reply for %s: %w", key, err)
	}
	return nil
}
