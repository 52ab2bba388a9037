package config

// Depfile represents the structure of the depcache.yaml configuration file.
type Depfile struct {
	Version    string      `yaml:"version"`
	Root       string      `yaml:"root"`
	CacheDir   string      `yaml:"cacheDir"`
	Resolution string      `yaml:"resolution"`
	Options    *OptionsDTO `yaml:"options"`
}

// OptionsDTO represents the cache options block. Pointers distinguish unset from false.
type OptionsDTO struct {
	UseFullDepName  *bool `yaml:"useFullDepName"`
	ExtractLintJars *bool `yaml:"extractLintJars"`
	FetchSources    *bool `yaml:"fetchSources"`
	Cleanup         *bool `yaml:"cleanup"`
	VerifyDigests   *bool `yaml:"verifyDigests"`
}
