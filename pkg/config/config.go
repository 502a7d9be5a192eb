package config

import "os"

// MQConfig 메시지 큐 설정
type MQConfig struct {
	// URL 비어 있으면 이벤트 발행을 끈다.
	URL string `yaml:"url"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port string `yaml:"port"`
}

// OverrideMQFromEnv 환경 변수로 MQ 설정을 덮어쓴다.
func OverrideMQFromEnv(cfg *MQConfig) {
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.URL = url
	}
}

// OverrideServerFromEnv 환경 변수로 서버 설정을 덮어쓴다.
func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
}
