package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ListenAddr        string   `yaml:"listen_addr"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	JwtTTLMinutes     int      `yaml:"jwt_ttl_minutes"`
	MaxCommentLength  int      `yaml:"max_comment_length"`
	PreviewLength     int      `yaml:"preview_length"` // feed body preview cutoff, runes
	MediaRoot         string   `yaml:"media_root"`
	MediaBaseURL      string   `yaml:"media_base_url"`
	MaxUploadBytes    int64    `yaml:"max_upload_bytes"`
	AllowedImageMimes []string `yaml:"allowed_image_mimes"`
	MaxImageDimension int      `yaml:"max_image_dimension"` // larger uploads get downscaled
	SecureCookies     bool     `yaml:"secure_cookies"`
	LogLevel          string   `yaml:"log_level"`
	LogJSON           bool     `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLMinutes) * time.Minute
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ListenAddr == "" {
		c.Public.ListenAddr = ":8080"
	}
	if c.Public.JwtTTLMinutes == 0 {
		c.Public.JwtTTLMinutes = 12 * 60
	}
	if c.Public.MaxCommentLength == 0 {
		c.Public.MaxCommentLength = 300
	}
	if c.Public.PreviewLength == 0 {
		c.Public.PreviewLength = 300
	}
	if c.Public.MaxUploadBytes == 0 {
		c.Public.MaxUploadBytes = 10 << 20
	}
	if c.Public.MaxImageDimension == 0 {
		c.Public.MaxImageDimension = 1920
	}
	if len(c.Public.AllowedImageMimes) == 0 {
		c.Public.AllowedImageMimes = []string{"image/jpeg", "image/png", "image/gif"}
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}
