package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/manifoldco/promptui"
)

// ConfirmerAdapter asks yes/no questions on the terminal
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg}
}

// Confirm returns true when the operator answers yes. Non-interactive runs and
// --yes answer yes without prompting.
func (c *ConfirmerAdapter) Confirm(ctx context.Context, label string) (bool, error) {
	if c.config.NonInteractive || c.config.AssumeYes {
		return true, nil
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt):
		return false, fmt.Errorf("interrupted")
	default:
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
