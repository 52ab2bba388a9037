package resolution

// Snapshot represents the structure of a resolution file written by the external resolver.
type Snapshot struct {
	Version    string        `yaml:"version"`
	Artifacts  []ArtifactDTO `yaml:"artifacts"`
	LocalFiles []string      `yaml:"localFiles"`
}

// ArtifactDTO represents one resolved artifact in the snapshot.
type ArtifactDTO struct {
	ID         string `yaml:"id"`
	Group      string `yaml:"group"`
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	Classifier string `yaml:"classifier"`
	File       string `yaml:"file"`
	Sources    string `yaml:"sources"`
}
