package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/domain"
)

// LoopOptions configure the line loop. A nil PromptOut disables the prompt,
// which is what piped input wants.
type LoopOptions struct {
	Prompt    string
	PromptOut io.Writer
	Greet     bool
}

// Loop feeds lines from a reader into a Dispatcher under one session key.
type Loop struct {
	dispatcher *Dispatcher
	key        domain.SessionKey
	opts       LoopOptions
}

func NewLoop(dispatcher *Dispatcher, key domain.SessionKey, opts LoopOptions) *Loop {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	return &Loop{dispatcher: dispatcher, key: key, opts: opts}
}

// Run reads until EOF, /quit or /exit, or until ctx is done.
func (l *Loop) Run(ctx context.Context, in io.Reader) error {
	if l.opts.Greet {
		if err := l.dispatcher.Handle(ctx, l.key, "/start"); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.prompt()
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		}

		if err := l.dispatcher.Handle(ctx, l.key, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read chat input: %w", err)
	}
	return nil
}

func (l *Loop) prompt() {
	if l.opts.PromptOut != nil {
		_, _ = fmt.Fprint(l.opts.PromptOut, l.opts.Prompt)
	}
}
