package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "webspace"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".webspacerc.yaml", ".webspacerc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .webspacerc.yaml or .webspacerc.yml in the
// current directory. Returns "" if there is none.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findFirst(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file, or "" if
// there is none.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir simply means no global config
		return "", nil
	}
	return findFirst(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func findFirst(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a CLIConfig from a YAML file. SetFields records the
// top-level keys present in the file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newConfigError(path, err)
	}

	var cfg CLIConfig
	// An empty file decodes to a zero node.
	if doc.Kind != 0 {
		if err := doc.Decode(&cfg); err != nil {
			return nil, newConfigError(path, err)
		}
	}

	cfg.Sources = make(map[string]string)
	cfg.SetFields = topLevelKeys(&doc)
	return &cfg, nil
}

func topLevelKeys(doc *yaml.Node) map[string]bool {
	keys := make(map[string]bool)
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return keys
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return keys
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys[m.Content[i].Value] = true
	}
	return keys
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func newConfigError(path string, err error) *ConfigError {
	ce := &ConfigError{Path: path, Message: err.Error()}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		ce.Message = typeErr.Errors[0]
	}

	// yaml.v3 reports positions as "yaml: line N: ..." or "line N: ...".
	msg := strings.TrimPrefix(ce.Message, "yaml: ")
	if rest, ok := strings.CutPrefix(msg, "line "); ok {
		if num, tail, ok := strings.Cut(rest, ": "); ok {
			if line, err := strconv.Atoi(num); err == nil {
				ce.Line = line
				ce.Message = tail
			}
		}
	}
	return ce
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources except flags and merges them.
// If explicitPath is non-empty (from --config or WEBSPACE_CONFIG) only that
// file is read; otherwise the global and local files are searched for.
// Precedence: env > file(s) > defaults
func LoadAll(explicitPath string) (*CLIConfig, error) {
	cfg := NewDefault()

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}

	if explicitPath != "" {
		fileCfg, err := LoadConfigFile(explicitPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, fileCfg, SourceFile)
	} else {
		if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
			globalCfg, err := LoadConfigFile(globalPath)
			if err != nil {
				return nil, err
			}
			MergeConfig(cfg, globalCfg, SourceGlobal)
		}

		if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
			localCfg, err := LoadConfigFile(localPath)
			if err != nil {
				return nil, err
			}
			MergeConfig(cfg, localCfg, SourceLocal)
		}
	}

	LoadEnvConfig(cfg)

	return cfg, nil
}
