package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"healthgpt/internal/logging"
)

// Session is the interactive menu loop.
type Session struct {
	dispatcher *Dispatcher
	console    *Console
	logger     *slog.Logger
}

func NewSession(dispatcher *Dispatcher, console *Console, logger *slog.Logger) *Session {
	return &Session{
		dispatcher: dispatcher,
		console:    console,
		logger:     logging.NewComponentLogger(logger, "dashboard"),
	}
}

// Run shows the menu and dispatches selections until the user quits, input
// ends, or ctx is cancelled. Backend failures never end the loop.
func (s *Session) Run(ctx context.Context) error {
	con := s.console
	con.Header(Title)
	if err := s.dispatcher.Render(ctx, con, MenuHome); err != nil {
		return ignoreEOF(err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		con.Println()
		for i, item := range MenuItems {
			con.Printf("  %d) %s\n", i+1, item)
		}
		input, err := con.Prompt(ctx, fmt.Sprintf("Menu [1-%d, q to quit]", len(MenuItems)))
		if err != nil {
			return ignoreEOF(err)
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			continue
		case "q", "quit", "exit":
			s.logger.Debug("dashboard closed by user")
			return nil
		}
		item, ok := ParseMenuItem(input)
		if !ok {
			con.Warn(fmt.Sprintf("Unknown menu entry %q", strings.TrimSpace(input)))
			continue
		}
		s.logger.Debug("view selected", logging.String(logging.FieldView, item.String()))
		if err := s.dispatcher.Render(ctx, con, item); err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
