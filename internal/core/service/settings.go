package service

import (
	"log/slog"
	"sync"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.AdminConfigView = (*SettingsService)(nil)

// SettingsService owns the singleton business settings record.
type SettingsService struct {
	mu    sync.Mutex
	cfg   domain.AdminConfig
	saver port.DocumentSaver
}

func NewSettingsService(cfg domain.AdminConfig, saver port.DocumentSaver) *SettingsService {
	return &SettingsService{cfg: cfg, saver: saver}
}

func (s *SettingsService) AdminConfig() domain.AdminConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *SettingsService) Update(cfg domain.AdminConfig) {
	const op = "SettingsService.Update"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.saver.Save(port.DocAdminConfig, s.cfg)

	slog.Info("settings updated", "op", op)
}
