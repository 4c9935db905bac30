package config

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config содержит все конфигурационные параметры приложения
type Config struct {
	BaseURL     string   `json:"base_url" env:"BASE_URL"`
	NumLinks    int      `json:"num_links" env:"NUM_LINKS" envDefault:"10"`
	PathPattern string   `json:"path_pattern" env:"PATH_PATTERN" envDefault:"/page{}"`
	TLDs        []string `json:"tlds" env:"TLDS" envSeparator:","`
	Seed        int64    `json:"seed" env:"SEED"`
	LoggerLevel string   `json:"log_level" env:"LOG_LEVEL" envDefault:"info"`
	JSONOutput  bool     `json:"json_output" env:"JSON_OUTPUT"`
	ConfigFile  string   `json:"-" env:"CONFIG"`
}

// LoadConfig загружает конфигурацию из переменных окружения и аргументов
// командной строки или JSON конфиг файла
func LoadConfig() *Config {
	config := &Config{}
	err := env.Parse(config)

	if err != nil {
		panic(err)
	}

	ParseFlags(config)

	if config.ConfigFile != "" {
		fileConfig, err := loadConfigFromFile(config.ConfigFile)
		if err != nil {
			panic(err)
		}
		mergeConfigs(config, fileConfig)
	}

	return config
}

// ParseFlags добавляет флаги командной строки для параметров конфигурации
// и переопределяет значения, если они указаны в аргументах запуска.
// Первый позиционный аргумент трактуется как базовый URL
func ParseFlags(config *Config) {
	parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:], config)
}

func parseFlags(fs *flag.FlagSet, args []string, config *Config) error {
	fs.IntVar(&config.NumLinks, "num-links", config.NumLinks, "number of links to generate")
	fs.StringVar(&config.PathPattern, "path-pattern", config.PathPattern, "pattern for generated paths, with one {} placeholder")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "random seed, 0 means seed from system time")
	fs.StringVar(&config.LoggerLevel, "l", config.LoggerLevel, "log level")
	fs.BoolVar(&config.JSONOutput, "json", config.JSONOutput, "print links as a JSON document")
	fs.StringVar(&config.ConfigFile, "c", config.ConfigFile, "path to JSON config file")

	var tlds string
	fs.StringVar(&tlds, "tlds", "", "comma-separated list of candidate TLDs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if tlds != "" {
		config.TLDs = strings.Split(tlds, ",")
	}

	if fs.NArg() > 0 {
		config.BaseURL = fs.Arg(0)
	}

	return nil
}

func loadConfigFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) isDefault(field string) bool {
	switch field {
	case "NumLinks":
		return c.NumLinks == 10
	case "PathPattern":
		return c.PathPattern == "/page{}"
	case "TLDs":
		return len(c.TLDs) == 0
	case "Seed":
		return c.Seed == 0
	case "LoggerLevel":
		return c.LoggerLevel == "info"
	case "JSONOutput":
		return !c.JSONOutput
	default:
		return false
	}
}

func mergeConfigs(dst, src *Config) {
	if src.BaseURL != "" && dst.BaseURL == "" {
		dst.BaseURL = src.BaseURL
	}
	if src.NumLinks != 0 && dst.isDefault("NumLinks") {
		dst.NumLinks = src.NumLinks
	}
	if src.PathPattern != "" && dst.isDefault("PathPattern") {
		dst.PathPattern = src.PathPattern
	}
	if len(src.TLDs) > 0 && dst.isDefault("TLDs") {
		dst.TLDs = src.TLDs
	}
	if src.Seed != 0 && dst.isDefault("Seed") {
		dst.Seed = src.Seed
	}
	if src.LoggerLevel != "" && dst.isDefault("LoggerLevel") {
		dst.LoggerLevel = src.LoggerLevel
	}
	if src.JSONOutput && dst.isDefault("JSONOutput") {
		dst.JSONOutput = src.JSONOutput
	}
}
