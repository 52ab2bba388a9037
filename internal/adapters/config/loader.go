// Package config provides the configuration loader for depcache.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds depcache.yaml in cwd or its closest ancestor and converts it into a domain.Config.
// Without a configuration file the defaults apply, anchored at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return defaultConfig(absCwd), nil
	}

	var depfile Depfile
	if err := readAndUnmarshalYAML(configPath, &depfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if depfile.Version != "" && depfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares unknown version %q, reading it as version %s",
			configPath, depfile.Version, SupportedVersion))
	}

	return toDomain(configPath, &depfile), nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func defaultConfig(root string) *domain.Config {
	opts := domain.DefaultCacheOptions()
	opts.ProjectRoot = root
	opts.CacheDir = resolvePath(root, opts.CacheDir)
	return &domain.Config{
		ResolutionFile: resolvePath(root, domain.ResolutionFileName),
		Options:        opts,
	}
}

func toDomain(configPath string, depfile *Depfile) *domain.Config {
	configDir := filepath.Dir(configPath)
	root := resolvePath(configDir, depfile.Root)

	cfg := defaultConfig(root)
	if depfile.CacheDir != "" {
		cfg.Options.CacheDir = resolvePath(configDir, depfile.CacheDir)
	}
	if depfile.Resolution != "" {
		cfg.ResolutionFile = resolvePath(configDir, depfile.Resolution)
	}

	if o := depfile.Options; o != nil {
		setBool(&cfg.Options.UseFullDepName, o.UseFullDepName)
		setBool(&cfg.Options.ExtractLintJars, o.ExtractLintJars)
		setBool(&cfg.Options.FetchSources, o.FetchSources)
		setBool(&cfg.Options.Cleanup, o.Cleanup)
		setBool(&cfg.Options.VerifyDigests, o.VerifyDigests)
	}
	return cfg
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// resolvePath anchors a relative path at base. An empty path resolves to base itself.
func resolvePath(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is located by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
