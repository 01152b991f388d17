package settings

import (
	"bytes"
	"flag"
	"os"

	"github.com/ATenderholt/rainbow-copier/internal/domain"
	"gopkg.in/yaml.v2"
)

const (
	DefaultRegion = "us-west-2"
	DefaultPort   = 9060

	DestBucketEnv = "DEST_BUCKET"
	RegionEnv     = "AWS_REGION"
	EndpointEnv   = "S3_ENDPOINT"
)

type Config struct {
	DestBucket      string `yaml:"destBucket"`
	Region          string `yaml:"region"`
	S3Endpoint      string `yaml:"s3Endpoint"`
	UsePathStyle    bool   `yaml:"usePathStyle"`
	IsDebug         bool   `yaml:"debug"`
	ContinueOnError bool   `yaml:"continueOnError"`
	Prefix          string `yaml:"prefix"`
	Suffix          string `yaml:"suffix"`
	Port            int    `yaml:"port"`

	EventPath  string `yaml:"-"`
	ConfigPath string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Region: DefaultRegion,
		Port:   DefaultPort,
	}
}

func (config *Config) Destination() string {
	return config.DestBucket
}

func (config *Config) AbortOnError() bool {
	return !config.ContinueOnError
}

func (config *Config) KeyFilter() domain.Filter {
	return domain.NewFilter(config.Prefix, config.Suffix)
}

// Validate fails when no destination bucket has been configured from any source.
func (config *Config) Validate() error {
	if config.DestBucket == "" {
		return ErrMissingDestBucket
	}

	return nil
}

func (config *Config) loadFile(path string) error {
	logger.Debugf("Loading configuration from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return LoadError{path: path, base: err}
	}

	err = yaml.UnmarshalStrict(data, config)
	if err != nil {
		return DecodeError{path: path, base: err}
	}

	return nil
}

func (config *Config) loadEnv(lookup func(string) (string, bool)) {
	if value, ok := lookup(DestBucketEnv); ok {
		config.DestBucket = value
	}

	if value, ok := lookup(RegionEnv); ok && value != "" {
		config.Region = value
	}

	if value, ok := lookup(EndpointEnv); ok {
		config.S3Endpoint = value
	}
}

// overlay copies values for flags that were given explicitly on the command line.
func (config *Config) overlay(parsed *Config, explicit map[string]bool) {
	for name := range explicit {
		switch name {
		case "dest-bucket":
			config.DestBucket = parsed.DestBucket
		case "region":
			config.Region = parsed.Region
		case "s3-endpoint":
			config.S3Endpoint = parsed.S3Endpoint
		case "path-style":
			config.UsePathStyle = parsed.UsePathStyle
		case "debug":
			config.IsDebug = parsed.IsDebug
		case "continue-on-error":
			config.ContinueOnError = parsed.ContinueOnError
		case "prefix":
			config.Prefix = parsed.Prefix
		case "suffix":
			config.Suffix = parsed.Suffix
		case "port":
			config.Port = parsed.Port
		}
	}
}

// FromFlags resolves configuration from defaults, an optional yaml file,
// the environment and finally command line flags, in that order.
func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	parsed := *DefaultConfig()
	flags.StringVar(&parsed.DestBucket, "dest-bucket", "", "Bucket objects are copied into (overrides "+DestBucketEnv+")")
	flags.StringVar(&parsed.Region, "region", DefaultRegion, "AWS region of the destination bucket")
	flags.StringVar(&parsed.S3Endpoint, "s3-endpoint", "", "Endpoint URL for an S3 compatible service")
	flags.BoolVar(&parsed.UsePathStyle, "path-style", false, "Use path-style addressing for S3 requests")
	flags.BoolVar(&parsed.IsDebug, "debug", false, "Enable debug logging")
	flags.BoolVar(&parsed.ContinueOnError, "continue-on-error", false, "Attempt every record in a batch and report all failures together")
	flags.StringVar(&parsed.Prefix, "prefix", "", "Only copy objects whose key has this prefix")
	flags.StringVar(&parsed.Suffix, "suffix", "", "Only copy objects whose key has this suffix")
	flags.IntVar(&parsed.Port, "port", DefaultPort, "Port for the local invoke endpoint")
	flags.StringVar(&parsed.EventPath, "event", "", "Handle a single event from this file (- for stdin) and exit")
	flags.StringVar(&parsed.ConfigPath, "config", "", "Path to a yaml configuration file")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	cfg := DefaultConfig()
	cfg.EventPath = parsed.EventPath
	cfg.ConfigPath = parsed.ConfigPath

	if cfg.ConfigPath != "" {
		err = cfg.loadFile(cfg.ConfigPath)
		if err != nil {
			logger.Error(err)
			return nil, buf.String(), err
		}
	}

	cfg.loadEnv(os.LookupEnv)
	cfg.overlay(&parsed, explicit)

	return cfg, buf.String(), nil
}
