// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotConfigured is returned by [New] when the service layer or the
// configuration is missing.
var ErrNotConfigured = errors.New("tui: services and configuration are required")

// TUI is the interactive terminal front end of the vault.
type TUI struct {
	vault    service.VaultService
	clip     clipboardAccess
	settings settings
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.Services, cfg *config.StructuredConfig, info models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Vault == nil || cfg == nil {
		return nil, ErrNotConfigured
	}

	return &TUI{
		vault: services.Vault,
		clip:  systemClipboard{},
		settings: settings{
			vaultPath:     cfg.Vault.FilePath,
			clearAfter:    cfg.UI.ClipboardDelay(),
			defaultLength: cfg.Generator.DefaultLength,
		},
		info:   info,
		logger: log.GetChildLogger(),
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.vault, t.clip, t.settings, t.info, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
