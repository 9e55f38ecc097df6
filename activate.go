package metrica

import (
	"github.com/metrica-go/metrica/internal/payload"
)

// Activate forwards cfg to the SDK and, unless cfg disables it, starts
// app-open tracking. Only the first successful call has any effect; later
// calls are ignored whatever their config and return nil.
func (m *AppMetrica) Activate(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activated {
		m.logger.Warn("metrica already activated, ignoring config",
			"apiKey", maskKey(cfg.APIKey),
		)
		return nil
	}

	data, err := payload.Encode("config", cfg)
	if err != nil {
		return err
	}
	if err := m.native.Activate(data); err != nil {
		return err
	}

	if cfg.AppOpenTracking() {
		m.trackAppOpens()
	}
	m.activated = true
	m.logger.Debug("metrica activated",
		"apiKey", maskKey(cfg.APIKey),
		"appOpenTracking", cfg.AppOpenTracking(),
	)
	return nil
}

// trackAppOpens reports the launch URL once and every URL the app is
// opened with afterwards.
func (m *AppMetrica) trackAppOpens() {
	go func() {
		url, err := m.linker.InitialURL(m.ctx)
		if err != nil {
			m.logger.Debug("initial url unavailable", "err", err)
			return
		}
		if url == "" {
			return
		}
		if err := m.native.ReportAppOpen(url); err != nil {
			m.logger.Warn("failed to report initial app open", "err", err)
		}
	}()

	m.linker.Subscribe(func(url string) {
		if err := m.native.ReportAppOpen(url); err != nil {
			m.logger.Warn("failed to report app open", "url", url, "err", err)
		}
	})
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
