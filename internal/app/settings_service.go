package app

import (
	"strings"
	"sync"

	"lms-admin-service/internal/domain"
)

// SettingsService holds the settings shell and the responsible-person lookup.
type SettingsService struct {
	mu       sync.RWMutex
	settings domain.Settings
	persons  []string
}

// NewSettingsService starts from initial settings. persons is the read-only
// list of names that can be made responsible for a course or content item.
func NewSettingsService(initial domain.Settings, persons []string) *SettingsService {
	return &SettingsService{settings: initial, persons: append([]string{}, persons...)}
}

func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Apply(domain.SettingsUpdate{})
}

// Update merges u. The platform name cannot be blanked.
func (s *SettingsService) Update(u domain.SettingsUpdate) (domain.Settings, error) {
	if name, ok := u.PlatformName.Get(); ok && strings.TrimSpace(name) == "" {
		return domain.Settings{}, &domain.ValidationError{Field: "platformName", Message: "platform name is required"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = s.settings.Apply(u)
	return s.settings.Apply(domain.SettingsUpdate{}), nil
}

func (s *SettingsService) ResponsiblePersons() []string {
	return append([]string{}, s.persons...)
}
