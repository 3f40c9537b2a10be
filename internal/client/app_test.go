package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err    error
	called bool
}

func (f *fakeUI) Run(context.Context) error {
	f.called = true
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "clean exit"},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "wrapped interrupt", uiErr: errors.Join(errors.New("program killed"), context.Canceled)},
		{name: "failure", uiErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(logger.Nop().WithContext(context.Background()))

			assert.True(t, ui.called)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
