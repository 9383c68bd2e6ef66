// Package shell is the operator console: a numbered menu read line by line
// from an input stream, dispatching to the café controller.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jcmexdev/cafe-console/internal/cafe"
	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

const (
	choiceMenu = iota + 1
	choiceOrder
	choiceReview
	choiceSales
	choiceOrders
	choiceReviews
	choiceExit
)

const doneKeyword = "done"

type Shell struct {
	cafe  *cafe.Cafe
	in    *bufio.Scanner
	out   io.Writer
	title string
}

func New(cf *cafe.Cafe, in io.Reader, out io.Writer, title string) *Shell {
	return &Shell{
		cafe:  cf,
		in:    bufio.NewScanner(in),
		out:   out,
		title: title,
	}
}

// Run serves commands until the operator exits or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.renderMainMenu()
		line, ok := s.readLine()
		if !ok {
			s.printf("\n")
			s.goodbye()
			return s.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = 0
		}
		if choice == choiceExit {
			s.goodbye()
			return nil
		}

		cmdCtx := telemetry.WithCommandID(ctx, uuid.NewString())
		slog.DebugContext(cmdCtx, "command received", "choice", line)
		s.dispatch(cmdCtx, choice)
	}
}

func (s *Shell) dispatch(ctx context.Context, choice int) {
	switch choice {
	case choiceMenu:
		s.renderMenu()
	case choiceOrder:
		s.takeOrder(ctx)
	case choiceReview:
		s.leaveReview(ctx)
	case choiceSales:
		s.renderSales()
	case choiceOrders:
		s.renderOrders()
	case choiceReviews:
		s.renderReviews()
	default:
		s.printf("Invalid choice. Please try again.\n")
	}
}

func (s *Shell) goodbye() {
	s.printf("Thank you for visiting the café! Goodbye!\n")
}

// readLine returns the next trimmed line, or false at end of input.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) prompt(msg string) (string, bool) {
	s.printf("%s", msg)
	return s.readLine()
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
