package config

type AppConfig struct {
	PoolConfig *PoolConfig
}

func New() *AppConfig {
	return &AppConfig{
		PoolConfig: NewPoolConfig(),
	}
}
