package domain

// AdminProfile is the signed-in administrator shown in settings.
type AdminProfile struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
}

// Settings is the settings shell: profile, roles and platform branding.
type Settings struct {
	Profile      AdminProfile `json:"profile" yaml:"profile"`
	Roles        []string     `json:"roles" yaml:"roles"`
	PlatformName string       `json:"platformName" yaml:"platformName"`
}

// SettingsUpdate is a partial update of Settings.
type SettingsUpdate struct {
	FirstName    Opt[string]   `json:"firstName"`
	LastName     Opt[string]   `json:"lastName"`
	Email        Opt[string]   `json:"email"`
	Phone        Opt[string]   `json:"phone"`
	Roles        Opt[[]string] `json:"roles"`
	PlatformName Opt[string]   `json:"platformName"`
}

// DefaultSettings mirrors the console's initial settings.
func DefaultSettings() Settings {
	return Settings{
		Profile: AdminProfile{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@learnhub.com",
		},
		Roles:        []string{"Super Admin", "Course Admin", "Content Manager", "Viewer"},
		PlatformName: "LearnHub",
	}
}

// Apply merges u into s.
func (s Settings) Apply(u SettingsUpdate) Settings {
	out := s
	out.Roles = append([]string{}, s.Roles...)
	u.FirstName.apply(&out.Profile.FirstName)
	u.LastName.apply(&out.Profile.LastName)
	u.Email.apply(&out.Profile.Email)
	u.Phone.apply(&out.Profile.Phone)
	u.PlatformName.apply(&out.PlatformName)
	if roles, ok := u.Roles.Get(); ok {
		out.Roles = append([]string{}, roles...)
	}
	return out
}
