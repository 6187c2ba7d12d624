package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects the few knobs the quiz shell has. Values come from an
// optional YAML file, overridden by environment variables, overridden by CLI
// flags (applied by the cli package).
type Config struct {
	// DBPath is the sqlite file holding results. Empty means in-memory only.
	DBPath string `yaml:"dbPath"`
	// QuestionsPath overrides the embedded question bank.
	QuestionsPath string `yaml:"questionsPath"`
}

const defaultDBPath = "quiz.db"

// Load reads the optional config file at path (empty path skips the file)
// and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{DBPath: defaultDBPath}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("QUIZ_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUIZ_QUESTIONS_PATH"); v != "" {
		cfg.QuestionsPath = v
	}
	return cfg, nil
}
