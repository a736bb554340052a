package config

type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Search    SearchConfig
	Storage   StorageConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port int
}

// AssistantConfig points at the chat backend. An empty APIKey is allowed;
// when the backend is unreachable the server falls back to canned replies.
type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type SearchConfig struct {
	PageSize int
	TopK     int
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 5000,
		},
		Assistant: AssistantConfig{
			BaseURL: "http://localhost:8000",
			Model:   "gpt-4o-mini",
		},
		Search: SearchConfig{
			PageSize: 12,
			TopK:     5,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file backend at
// $XDG_CONFIG_HOME/artisty/config.json, then applies environment variable
// overrides (ARTISTY_*).
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if cfg.Search.PageSize <= 0 {
		cfg.Search.PageSize = 12
	}
	if cfg.Search.TopK <= 0 {
		cfg.Search.TopK = 5
	}

	return cfg, nil
}
