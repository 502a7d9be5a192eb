package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig base.yaml 위에 환경별 yaml 을 덮고, 값 안의 ${VAR} 자리를
// secrets.env 와 프로세스 환경 변수로 채운 결과를 돌려준다.
// secrets.env 가 같은 키를 가지면 프로세스 환경보다 우선한다.
func LoadConfig(env string, configDir string) (map[string]any, error) {
	if configDir == "" {
		configDir = "config"
	}

	merged, err := loadYAMLFile(filepath.Join(configDir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("load base.yaml: %w", err)
	}

	if env != "" && env != "base" {
		envFile := filepath.Join(configDir, env+".yaml")
		if _, err := os.Stat(envFile); err == nil {
			overlay, err := loadYAMLFile(envFile)
			if err != nil {
				return nil, fmt.Errorf("load %s.yaml: %w", env, err)
			}
			merged = mergeMaps(merged, overlay)
		}
	}

	secrets, err := loadEnvFile(filepath.Join(configDir, "secrets.env"))
	if err != nil {
		return nil, fmt.Errorf("load secrets.env: %w", err)
	}
	return expandValues(merged, secrets), nil
}

func loadYAMLFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return config, nil
}

// loadEnvFile KEY=VALUE 파일을 읽는다. 파일이 없으면 빈 맵.
func loadEnvFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	env := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return env, nil
}

// mergeMaps dst 위에 src 를 덮는다. 중첩 맵은 재귀적으로 병합.
func mergeMaps(dst, src map[string]any) map[string]any {
	result := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		result[k] = v
	}
	for k, v := range src {
		srcMap, srcOK := v.(map[string]any)
		dstMap, dstOK := result[k].(map[string]any)
		if srcOK && dstOK {
			result[k] = mergeMaps(dstMap, srcMap)
			continue
		}
		result[k] = v
	}
	return result
}

// expandValues 문자열 값의 ${VAR} 를 secrets, 없으면 프로세스 환경으로 치환한다.
func expandValues(config map[string]any, secrets map[string]string) map[string]any {
	lookup := func(key string) string {
		if v, ok := secrets[key]; ok {
			return v
		}
		return os.Getenv(key)
	}

	result := make(map[string]any, len(config))
	for k, v := range config {
		switch val := v.(type) {
		case string:
			result[k] = os.Expand(val, lookup)
		case map[string]any:
			result[k] = expandValues(val, secrets)
		default:
			result[k] = v
		}
	}
	return result
}

// GetEnv 환경 변수를 읽고, 없으면 기본값을 돌려준다.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetConfigEnv 설정 환경 이름 (CONFIG_ENV, 기본 local)
func GetConfigEnv() string {
	return GetEnv("CONFIG_ENV", "local")
}
