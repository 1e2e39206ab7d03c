// Package prefs persists the user display preferences through the durable
// key-value backend.
package prefs

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/internal/storage"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// Preferences are display-only settings; the currency annotates amounts and
// never participates in ledger arithmetic.
type Preferences struct {
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
	ShowTooltips   bool   `json:"show_tooltips"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		ShowTooltips:   true,
	}
}

// Service reads and writes preferences.
type Service struct {
	kv     storage.KV
	logger *logger.Logger
}

// NewService creates a preferences service.
func NewService(kv storage.KV, log *logger.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: log.WithComponent("prefs"),
	}
}

// Get returns the stored preferences, degrading to defaults when the value is
// absent, corrupt or the backend is unreachable.
func (s *Service) Get(ctx context.Context) Preferences {
	raw, ok, err := s.kv.Get(ctx, storage.KeyPreferences)
	if err != nil {
		s.logger.Warn("storage unreachable, using default preferences", "error", err)
		return Defaults()
	}
	if !ok {
		return Defaults()
	}

	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn("stored preferences corrupt, using defaults", "error", err)
		return Defaults()
	}
	if p.CurrencyCode == "" {
		p.CurrencyCode = Defaults().CurrencyCode
	}
	if p.CurrencySymbol == "" {
		p.CurrencySymbol = Defaults().CurrencySymbol
	}
	return p
}

// Set validates and persists the preferences.
func (s *Service) Set(ctx context.Context, p Preferences) error {
	if strings.TrimSpace(p.CurrencyCode) == "" {
		return apperrors.Validation("currency code is required")
	}
	if strings.TrimSpace(p.CurrencySymbol) == "" {
		return apperrors.Validation("currency symbol is required")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.Internal("failed to marshal preferences", err)
	}
	return s.kv.Set(ctx, storage.KeyPreferences, string(data))
}
