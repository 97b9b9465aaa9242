package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"

	DefaultGeminiEndpoint  = "https://generativelanguage.googleapis.com/v1/models/gemini-2.0-flash:generateContent"
	DefaultMaxContentChars = 15000
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Relay  RelayConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Env    string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// LLMConfig selects and configures the text-generation backend.
type LLMConfig struct {
	Provider   string
	Gemini     GeminiConfig
	Ollama     OllamaConfig
	Generation GenerationConfig
}

type GeminiConfig struct {
	Endpoint string
	APIKey   string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

// GenerationConfig mirrors the generationConfig block sent with every prompt.
type GenerationConfig struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

type RelayConfig struct {
	MaxContentChars int
}

// RedisConfig is optional; an empty Address switches bookmarks to the in-memory store.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.gemini.endpoint", DefaultGeminiEndpoint)
	v.SetDefault("llm.ollama.server_url", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "qwen3:0.6b")
	v.SetDefault("llm.generation.temperature", 0.4)
	v.SetDefault("llm.generation.top_k", 32)
	v.SetDefault("llm.generation.top_p", 0.95)
	v.SetDefault("llm.generation.max_output_tokens", 8192)
	v.SetDefault("relay.max_content_chars", DefaultMaxContentChars)
	v.SetDefault("logger.level", "info")
}

// LoadConfig reads config.yaml from the working directory (or ./config) and
// applies environment overrides. A missing config file is not an error;
// defaults plus environment are enough to run.
func LoadConfig() (*Config, error) {
	return Load(viper.New(), "")
}

// Load fills a Config from v. When path is non-empty it is used as the
// config file instead of the search paths.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if os.Getenv("ENV") == "test" {
			v.AddConfigPath("../../config")
			v.AddConfigPath("../../")
		} else {
			v.AddConfigPath(".")
			v.AddConfigPath("./config")
		}
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		LLM: LLMConfig{
			Provider: v.GetString("llm.provider"),
			Gemini: GeminiConfig{
				Endpoint: v.GetString("llm.gemini.endpoint"),
				APIKey:   v.GetString("llm.gemini.api_key"),
			},
			Ollama: OllamaConfig{
				ServerURL: v.GetString("llm.ollama.server_url"),
				Model:     v.GetString("llm.ollama.model"),
			},
			Generation: GenerationConfig{
				Temperature:     v.GetFloat64("llm.generation.temperature"),
				TopK:            v.GetInt("llm.generation.top_k"),
				TopP:            v.GetFloat64("llm.generation.top_p"),
				MaxOutputTokens: v.GetInt("llm.generation.max_output_tokens"),
			},
		},
		Relay: RelayConfig{
			MaxContentChars: v.GetInt("relay.max_content_chars"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.LLM.Gemini.APIKey = apiKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if ollamaServer := os.Getenv("OLLAMA_SERVER_URL"); ollamaServer != "" {
		cfg.LLM.Ollama.ServerURL = ollamaServer
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		v.Set("server.port", port)
		cfg.Server.Port = v.GetInt("server.port")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	cfg.Logger.Env = cfg.Env

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail on the first request.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.Gemini.Endpoint == "" {
			return fmt.Errorf("llm.gemini.endpoint is required for provider %q", ProviderGemini)
		}
	case ProviderOllama:
		if c.LLM.Ollama.ServerURL == "" || c.LLM.Ollama.Model == "" {
			return fmt.Errorf("llm.ollama.server_url and llm.ollama.model are required for provider %q", ProviderOllama)
		}
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Relay.MaxContentChars <= 0 {
		return fmt.Errorf("relay.max_content_chars must be positive, got %d", c.Relay.MaxContentChars)
	}
	return nil
}
