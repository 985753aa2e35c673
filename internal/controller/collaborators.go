package controller

import (
	"context"
	"errors"

	"github.com/setavenger/neon-desktop/internal/state"
)

// ErrCancelled is returned when the user dismissed a dialog or declined a confirmation.
var ErrCancelled = errors.New("cancelled by user")

// FileFilter restricts a save dialog to one file type.
type FileFilter struct {
	Name       string
	Extensions []string
}

// FileDialogs asks the user for file paths. Both methods return ErrCancelled
// when no path was chosen.
type FileDialogs interface {
	SaveFile(ctx context.Context, filter FileFilter) (string, error)
	OpenFile(ctx context.Context) (string, error)
}

// Notifier shows blocking acknowledgement notices.
type Notifier interface {
	Info(title, message string)
	Error(err error)
}

// ModalKind names a modal in logs
type ModalKind int

const (
	ModalConfirm ModalKind = iota
	ModalPrivateNet
	ModalToken
)

func (k ModalKind) String() string {
	switch k {
	case ModalConfirm:
		return "confirm"
	case ModalPrivateNet:
		return "private_net"
	case ModalToken:
		return "token"
	default:
		return "unknown"
	}
}

// ConfirmRequest is the content of a yes/no modal
type ConfirmRequest struct {
	Title string
	Text  string
}

// PrivateNetRequest carries the list the private network modal starts from
type PrivateNetRequest struct {
	Networks []state.PrivateNetwork
}

// TokenRequest carries the token list and the networks a token can be bound to
type TokenRequest struct {
	Tokens    []state.Token
	Networks  []state.Network
	NetworkID string
}

// Resolution is the single answer of a modal. Cancelled is set when the modal
// was dismissed without a result, Value is meaningless in that case.
type Resolution[T any] struct {
	Value     T
	Cancelled bool
}

// Modals presents modal dialogs. Every method returns immediately; the
// returned channel receives exactly one Resolution or is closed on dismissal.
type Modals interface {
	Confirm(ctx context.Context, req ConfirmRequest) <-chan Resolution[bool]
	EditPrivateNetworks(ctx context.Context, req PrivateNetRequest) <-chan Resolution[[]state.PrivateNetwork]
	EditTokens(ctx context.Context, req TokenRequest) <-chan Resolution[[]state.Token]
}

// await waits for a modal. ok is false when the modal was cancelled or closed.
func await[T any](ctx context.Context, ch <-chan Resolution[T]) (value T, ok bool, err error) {
	select {
	case <-ctx.Done():
		return value, false, ctx.Err()
	case res, open := <-ch:
		if !open || res.Cancelled {
			return value, false, nil
		}
		return res.Value, true, nil
	}
}
