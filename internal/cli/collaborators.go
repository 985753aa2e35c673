package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/state"
)

// pathDialogs answers file dialogs with paths given on the command line.
type pathDialogs struct {
	save string
	open string
}

func (d pathDialogs) SaveFile(ctx context.Context, _ controller.FileFilter) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if d.save == "" {
		return "", controller.ErrCancelled
	}
	return d.save, nil
}

func (d pathDialogs) OpenFile(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if d.open == "" {
		return "", controller.ErrCancelled
	}
	return d.open, nil
}

// streamNotices prints notices and remembers the errors it has shown.
type streamNotices struct {
	out    io.Writer
	errOut io.Writer
	shown  []error
}

func (n *streamNotices) Info(title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, strings.ReplaceAll(message, "\n", "\n  "))
}

func (n *streamNotices) Error(err error) {
	n.shown = append(n.shown, err)
	fmt.Fprintf(n.errOut, "Error: %v\n", err)
}

func (n *streamNotices) reported(err error) bool {
	for _, shown := range n.shown {
		if errors.Is(err, shown) {
			return true
		}
	}
	return false
}

// promptModals answers confirmations from the terminal. The list editors are
// applied by the command that set them, unset editors cancel the modal.
type promptModals struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool

	editNetworks func(*state.PrivateNetEditor) error
	editTokens   func(*state.TokenEditor) error

	// editErr is the error returned by the last editor, if any.
	editErr error
}

func (m *promptModals) Confirm(_ context.Context, req controller.ConfirmRequest) <-chan controller.Resolution[bool] {
	ch := make(chan controller.Resolution[bool], 1)
	defer close(ch)

	if m.assumeYes {
		ch <- controller.Resolution[bool]{Value: true}
		return ch
	}
	if m.in == nil {
		return ch
	}
	fmt.Fprintf(m.out, "%s [y/N]: ", req.Text)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return ch
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	ch <- controller.Resolution[bool]{Value: answer == "y" || answer == "yes"}
	return ch
}

func (m *promptModals) EditPrivateNetworks(_ context.Context, req controller.PrivateNetRequest) <-chan controller.Resolution[[]state.PrivateNetwork] {
	ch := make(chan controller.Resolution[[]state.PrivateNetwork], 1)
	defer close(ch)
	if m.editNetworks == nil {
		return ch
	}
	editor := state.NewPrivateNetEditor(req.Networks)
	if m.editErr = m.editNetworks(editor); m.editErr != nil {
		return ch
	}
	ch <- controller.Resolution[[]state.PrivateNetwork]{Value: editor.Result()}
	return ch
}

func (m *promptModals) EditTokens(_ context.Context, req controller.TokenRequest) <-chan controller.Resolution[[]state.Token] {
	ch := make(chan controller.Resolution[[]state.Token], 1)
	defer close(ch)
	if m.editTokens == nil {
		return ch
	}
	editor := state.NewTokenEditor(req.Tokens)
	if m.editErr = m.editTokens(editor); m.editErr != nil {
		return ch
	}
	ch <- controller.Resolution[[]state.Token]{Value: editor.Result()}
	return ch
}

// afterEdit turns a cancelled edit caused by an editor error into that error.
func (m *promptModals) afterEdit(err error) error {
	if errors.Is(err, controller.ErrCancelled) && m.editErr != nil {
		return m.editErr
	}
	return err
}
