package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/domkit/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		if err := m.load(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		m.notifyCallbacks()
	})

	m.watching = true
}

// OnChange registers a callback invoked after each successful reload.
func (m *Manager) OnChange(callback func(*Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacks copies callbacks and settings under the read lock, then
// notifies without holding it.
func (m *Manager) notifyCallbacks() {
	m.mu.RLock()
	settings := m.settings
	callbacks := make([]func(*Settings), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		callback(settings)
	}
}
