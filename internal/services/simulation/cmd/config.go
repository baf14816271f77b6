package main

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	PresetsPath string
	TimeoutMs   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		Port:        getenv("PORT", "5010"),
		PresetsPath: getenv("PRESETS_PATH", "configs/presets.json"),
		TimeoutMs:   getenvInt("TIMEOUT_MS", 3000),
	}
}
