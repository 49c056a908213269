package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultAddress = ":5000"
	// DefaultSqliteDSN 是进程内的共享内存数据库，进程退出后数据即消失
	DefaultSqliteDSN = "file:skillswap?mode=memory&cache=shared"
)

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode     string     `mapstructure:"mode"`
	Address  string     `mapstructure:"address"`
	BasePath string     `mapstructure:"basePath"`
	Cors     CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了存储相关的配置
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// SqliteConfig 定义了SQLite的连接串
type SqliteConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SeedConfig 控制启动时是否写入演示数据
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.basePath", "/api")
	v.SetDefault("server.cors.allowedOrigins", []string{"*"})
	v.SetDefault("database.sqlite.dsn", DefaultSqliteDSN)
	v.SetDefault("seed.enabled", true)
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 找不到 config.yaml 时使用默认值，环境变量始终可以覆盖
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 例如 SERVER_BASEPATH=/ 或 DATABASE_SQLITE_DSN=...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 兼容部署脚本使用的 SEED / PORT 环境变量
	if err := v.BindEnv("seed.enabled", "SEED_ENABLED", "SEED"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("server.address", "SERVER_ADDRESS"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("无法读取配置文件: %w", err)
		}
	}

	v.Set("seed.enabled", seedEnabled(v.GetString("seed.enabled")))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("无法解析配置: %w", err)
	}

	if cfg.Server.Address == "" {
		if port := v.GetString("port"); port != "" {
			cfg.Server.Address = ":" + port
		} else {
			cfg.Server.Address = defaultAddress
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// seedEnabled 解析演示数据开关：只有 "false"（不区分大小写）会关闭，
// 其余取值（包括 "no"、"0"、空串）都视为开启，与部署脚本中 SEED 的约定一致
func seedEnabled(raw string) bool {
	return !strings.EqualFold(strings.TrimSpace(raw), "false")
}

// Validate 检查配置取值是否合法，并规范化 BasePath
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("无效的 server.mode: %q", c.Server.Mode)
	}
	if c.Database.Sqlite.DSN == "" {
		return errors.New("database.sqlite.dsn 不能为空")
	}

	base := strings.TrimRight(strings.TrimSpace(c.Server.BasePath), "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	c.Server.BasePath = base
	return nil
}
