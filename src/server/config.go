package server

type Config struct {
	ListenAddress  string
	MetricsAddress string
	DatabasePath   string
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddress:  ":50052",
		MetricsAddress: ":9090",
		DatabasePath:   "data.db",
	}
}
