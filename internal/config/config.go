// Package config holds the swarm configuration.
package config

// Config is the root configuration.
type Config struct {
	Worker    WorkerConfig    `json:"worker"`
	Bridge    BridgeConfig    `json:"bridge"`
	Transport TransportConfig `json:"transport"`
	Generator GeneratorConfig `json:"generator"`
	Pulse     PulseConfig     `json:"pulse"`
}

// WorkerConfig tunes the worker loop.
type WorkerConfig struct {
	Name          string `json:"name"`
	QueueSize     int    `json:"queue_size"`
	PollTimeoutMS int    `json:"poll_timeout_ms"`
	YieldMS       int    `json:"yield_ms"`
}

// BridgeConfig tunes the execution bridge.
type BridgeConfig struct {
	QueueSize     int `json:"queue_size"`
	InitTimeoutMS int `json:"init_timeout_ms"`
}

// TransportConfig selects and configures the delivery transport.
type TransportConfig struct {
	Kind     string `json:"kind"` // simulated | websocket | redis
	URL      string `json:"url,omitempty"`
	Token    string `json:"token,omitempty"`
	Password string `json:"password,omitempty"`
	List     string `json:"list,omitempty"`
	Channel  string `json:"channel,omitempty"`
}

// GeneratorConfig configures the downstream text generator.
type GeneratorConfig struct {
	Enabled   bool   `json:"enabled"`
	BaseURL   string `json:"base_url,omitempty"`
	Model     string `json:"model,omitempty"`
	TimeoutMS int    `json:"timeout_ms,omitempty"`
}

// PulseConfig configures result composition.
type PulseConfig struct {
	TemplatesFile string `json:"templates_file,omitempty"`
	Tag           string `json:"tag,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Worker: WorkerConfig{
			Name:          "swarm-worker",
			QueueSize:     100,
			PollTimeoutMS: 1000,
			YieldMS:       10,
		},
		Bridge: BridgeConfig{
			QueueSize:     64,
			InitTimeoutMS: 10000,
		},
		Transport: TransportConfig{
			Kind: "simulated",
		},
		Generator: GeneratorConfig{
			Enabled:   false,
			BaseURL:   "http://localhost:11434",
			Model:     "mistral",
			TimeoutMS: 30000,
		},
	}
}
