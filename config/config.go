package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(filePath string) {
	config, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	initFromYaml(config)
	GConfig.applyEnv()
	err = GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	URLExpires    string `yaml:"url_expires"`
	DailyQuota    int    `yaml:"daily_quota"`
	AliOss        `yaml:"ali_oss"`
	MySQL         `yaml:"mysql"`
	OpenAI        `yaml:"openai"`
}

// Secrets and the quota can come from the environment so a config file
// never has to carry credentials.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.Token = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_ID"); v != "" {
		c.AliOss.AccessKeyId = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_SECRET"); v != "" {
		c.AliOss.AccessKeySecret = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv("MAX_DEGHIBS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DailyQuota = n
		}
	}
}

func (c *Config) Verify() error {
	if c.URLExpires == "" {
		c.URLExpires = "24h"
	}
	_, err := time.ParseDuration(c.URLExpires)
	if err != nil {
		return err
	}
	if c.DailyQuota <= 0 {
		c.DailyQuota = 3
	}
	if c.AliOss.Bucket == "" {
		return fmt.Errorf("ali_oss.bucket must be set")
	}
	if c.MySQL.Database == "" {
		return fmt.Errorf("mysql.database must be set")
	}
	if c.OpenAI.Token == "" {
		return fmt.Errorf("openai token must be set (openai.token or OPENAI_API_KEY)")
	}
	c.OpenAI.fullWithDefault()
	return nil
}

func (c *Config) URLExpiresDuration() time.Duration {
	d, err := time.ParseDuration(c.URLExpires)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type OpenAI struct {
	BaseURL      string `yaml:"base_url"`
	Token        string `yaml:"token"`
	VisionModel  string `yaml:"vision_model"`
	ImageModel   string `yaml:"image_model"`
	ImageSize    string `yaml:"image_size"`
	ImageQuality string `yaml:"image_quality"`
}

func (o *OpenAI) fullWithDefault() {
	if o.BaseURL == "" {
		o.BaseURL = "https://api.openai.com"
	}
	if o.VisionModel == "" {
		o.VisionModel = "gpt-4o"
	}
	if o.ImageModel == "" {
		o.ImageModel = "dall-e-3"
	}
	if o.ImageSize == "" {
		o.ImageSize = "1024x1024"
	}
	if o.ImageQuality == "" {
		o.ImageQuality = "hd"
	}
}
