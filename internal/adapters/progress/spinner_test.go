package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	sink := NewSpinnerSink(&out)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "interface", Current: 1, Total: 2, Message: "Exporting Token interface", Spinner: true})
	sink.Error("Failed to export Token interface")
	sink.Info("No deployed contract is configured for export")
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "complete", Message: "Exported 1 contracts"})
	sink.Stop()

	got := out.String()
	assert.Contains(t, got, "Exporting interfaces\n")
	assert.Contains(t, got, "✗ Failed to export Token interface\n")
	assert.Contains(t, got, "No deployed contract is configured for export\n")
	assert.Contains(t, got, "✓ Exported 1 contracts\n")
}

// fakeIndicator tracks spinner state without a terminal
type fakeIndicator struct {
	active bool
	starts int
	suffix string
}

func (f *fakeIndicator) Start()                  { f.active = true; f.starts++ }
func (f *fakeIndicator) Stop()                   { f.active = false }
func (f *fakeIndicator) Active() bool            { return f.active }
func (f *fakeIndicator) SetSuffix(suffix string) { f.suffix = suffix }

func TestSpinnerSinkLeavesSpinnerStopped(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
	ctx := context.Background()
	running := usecase.ProgressEvent{Stage: "deploy", Current: 1, Total: 1, Message: "new Token()", Spinner: true}

	tests := []struct {
		name   string
		finish func(sink *SpinnerSink)
	}{
		{name: "error", finish: func(sink *SpinnerSink) { sink.Error("Failed: new Token()") }},
		{name: "info", finish: func(sink *SpinnerSink) { sink.Info("No deployed contract is configured for export") }},
		{name: "completion event", finish: func(sink *SpinnerSink) {
			sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "deployed", Message: "Deployed 1 contracts, sent 0 transactions"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			fake := &fakeIndicator{}
			sink := &SpinnerSink{out: &out, spinner: fake}

			sink.OnProgress(ctx, running)
			require.True(t, fake.Active())
			assert.Equal(t, " [1/1] new Token()", fake.suffix)

			tt.finish(sink)
			assert.False(t, fake.Active())
			assert.Equal(t, 1, fake.starts)
		})
	}

	t.Run("next spinner event starts it again", func(t *testing.T) {
		fake := &fakeIndicator{}
		sink := &SpinnerSink{out: &bytes.Buffer{}, spinner: fake}

		sink.OnProgress(ctx, running)
		sink.Error("Failed: new Token()")
		sink.OnProgress(ctx, running)
		assert.True(t, fake.Active())
		assert.Equal(t, 2, fake.starts)
	})
}
