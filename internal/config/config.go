package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"pmdash/internal/kv"
	"pmdash/pkg/config"
)

// KVConfig 키-값 저장소 선택과 드라이버별 설정
type KVConfig struct {
	// Driver memory / redis / postgres
	Driver   string            `yaml:"driver"`
	Redis    kv.RedisConfig    `yaml:"redis"`
	Postgres kv.PostgresConfig `yaml:"postgres"`
}

type Config struct {
	KV     KVConfig            `yaml:"kv"`
	MQ     config.MQConfig     `yaml:"mq"`
	Server config.ServerConfig `yaml:"server"`
}

func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	// 환경 변수 우선
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideServerFromEnv(&cfg.Server)
	if driver := config.GetEnv("KV_DRIVER", ""); driver != "" {
		cfg.KV.Driver = driver
	}
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		cfg.KV.Redis.Addr = addr
	}

	if cfg.KV.Driver == "" {
		cfg.KV.Driver = "memory"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	return &cfg
}
