package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Rod           RodConfig           `yaml:"rod"`
	Retailer      RetailerConfig      `yaml:"retailer"`
	Pagination    PaginationConfig    `yaml:"pagination"`
	Cache         CacheConfig         `yaml:"cache"`
	Storage       StorageConfig       `yaml:"storage"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type ServerConfig struct {
	Addr             string `yaml:"addr"`
	StaticDir        string `yaml:"static_dir"`
	ReadTimeoutS     int    `yaml:"read_timeout_s"`
	WriteTimeoutS    int    `yaml:"write_timeout_s"`
	ShutdownTimeoutS int    `yaml:"shutdown_timeout_s"`
}

type RodConfig struct {
	ChromePath   string `yaml:"chrome_path"`
	Headless     bool   `yaml:"headless"`
	PageTimeoutS int    `yaml:"page_timeout_s"`
}

type RetailerConfig struct {
	Domain             string `yaml:"domain"`
	ProductPathSegment string `yaml:"product_path_segment"`
	ReviewPathSegment  string `yaml:"review_path_segment"`
	ReviewQuerySuffix  string `yaml:"review_query_suffix"`
	SelectorsFile      string `yaml:"selectors_file"`
}

type PaginationConfig struct {
	MaxPages int `yaml:"max_pages"`
}

type CacheConfig struct {
	Addr       string `yaml:"addr"`
	DB         int    `yaml:"db"`
	ReportTTLS int    `yaml:"report_ttl_s"`
}

type StorageConfig struct {
	Bucket         string `yaml:"bucket"`
	Region         string `yaml:"region"`
	Endpoint       string `yaml:"endpoint"`
	UploadTimeoutS int    `yaml:"upload_timeout_s"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// Validation
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeoutS <= 0 {
		return fmt.Errorf("server.read_timeout_s must be > 0")
	}
	if c.Server.WriteTimeoutS <= 0 {
		return fmt.Errorf("server.write_timeout_s must be > 0")
	}
	if c.Server.ShutdownTimeoutS <= 0 {
		return fmt.Errorf("server.shutdown_timeout_s must be > 0")
	}
	if c.Rod.PageTimeoutS <= 0 {
		return fmt.Errorf("rod.page_timeout_s must be > 0")
	}
	if c.Retailer.Domain == "" {
		return fmt.Errorf("retailer.domain is required")
	}
	if c.Retailer.ProductPathSegment == "" {
		return fmt.Errorf("retailer.product_path_segment is required")
	}
	if c.Retailer.ReviewPathSegment == "" {
		return fmt.Errorf("retailer.review_path_segment is required")
	}
	if c.Pagination.MaxPages <= 0 {
		return fmt.Errorf("pagination.max_pages must be > 0")
	}
	if c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required")
	}
	if c.Cache.DB < 0 {
		return fmt.Errorf("cache.db must be >= 0")
	}
	if c.Cache.ReportTTLS <= 0 {
		return fmt.Errorf("cache.report_ttl_s must be > 0")
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required")
	}
	if c.Storage.Region == "" {
		return fmt.Errorf("storage.region is required")
	}
	if c.Storage.UploadTimeoutS <= 0 {
		return fmt.Errorf("storage.upload_timeout_s must be > 0")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	return nil
}

// Getters
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutS) * time.Second
}

func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutS) * time.Second
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutS) * time.Second
}

func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (c *Config) GetReportTTL() time.Duration {
	return time.Duration(c.Cache.ReportTTLS) * time.Second
}

func (c *Config) GetUploadTimeout() time.Duration {
	return time.Duration(c.Storage.UploadTimeoutS) * time.Second
}
