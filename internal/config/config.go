package config

import (
	"ChordDHT/internal/logger"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
}

type TelemetryConfig struct {
	Tracing TracingConfig `yaml:"tracing"`
}

type FileLoggerConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Active   bool             `yaml:"active"`
	Level    string           `yaml:"level"`
	Encoding string           `yaml:"encoding"`
	Mode     string           `yaml:"mode"`
	File     FileLoggerConfig `yaml:"file"`
}

// StabilizationConfig holds the periods for the three background
// maintenance goroutines: stabilize, fix_fingers, check_predecessor.
// Each is run with a jittered period of uniform(T - T/4, T + T/4)
// around the configured value.
type StabilizationConfig struct {
	StabilizeInterval        time.Duration `yaml:"stabilizeInterval"`
	FixFingersInterval       time.Duration `yaml:"fixFingersInterval"`
	CheckPredecessorInterval time.Duration `yaml:"checkPredecessorInterval"`
	FailureTimeout           time.Duration `yaml:"failureTimeout"`
}

// Route53RegisterConfig names the Route53 hosted zone a node registers
// its own SRV record into (internal/bootstrap/register/route53.go).
type Route53RegisterConfig struct {
	HostedZoneID string `yaml:"hostedZoneId"`
	DomainSuffix string `yaml:"domainSuffix"`
}

// CoreDNSRegisterConfig names the etcd cluster a node registers its own
// lease-backed SRV-style record into (internal/bootstrap/register/coredns.go),
// the alternative to Route53 in etcd/CoreDNS-based deployments.
type CoreDNSRegisterConfig struct {
	EtcdEndpoints []string `yaml:"etcdEndpoints"`
	BasePath      string   `yaml:"basePath"`
	Domain        string   `yaml:"domain"`
}

// RegisterConfig controls self-registration into a shared directory so
// other nodes' bootstrap.Mode=dns/coredns discovery can find this one.
type RegisterConfig struct {
	Enabled bool                  `yaml:"enabled"`
	Type    string                `yaml:"type"` // route53 | coredns
	TTL     int64                 `yaml:"ttl"`
	Route53 Route53RegisterConfig `yaml:"route53"`
	CoreDNS CoreDNSRegisterConfig `yaml:"coredns"`
}

// BootstrapConfig selects how a joining node finds its initial anchor
// peer. Mode=static uses a fixed peer list, mode=dns resolves a raw DNS
// SRV/A record (internal/bootstrap/resolver.go, no self-registration),
// mode=route53 and mode=coredns both discover AND self-register through
// the backend named by Register.Type, mode=directory discovers AND
// self-registers through the name service (cmd/nameservice) at
// DirectoryAddr, and mode=init starts a fresh ring.
type BootstrapConfig struct {
	Mode          string         `yaml:"mode"`
	DNSName       string         `yaml:"dnsName"`
	Resolver      string         `yaml:"resolver"` // DNS server "host:port" to query, e.g. a Route53 resolver or CoreDNS
	Service       string         `yaml:"service"`  // SRV service name, e.g. "chord"
	Proto         string         `yaml:"proto"`    // SRV proto name, e.g. "tcp"
	SRV           bool           `yaml:"srv"`
	Port          int            `yaml:"port"`
	Peers         []string       `yaml:"peers"`
	Register      RegisterConfig `yaml:"register"`
	DirectoryAddr string         `yaml:"directoryAddr"`
}

// StorageConfig bounds a node's local hash table (a bounded,
// insertion-ordered FIFO store, not an LRU).
type StorageConfig struct {
	Capacity int `yaml:"capacity"`
}

// DHTConfig.JoinMode selects which join algorithm a node runs:
// "atomic" resolves every finger up front and never revisits them,
// "incremental" resolves only the successor at join time and lets
// stabilize/fix_fingers converge the rest.
type DHTConfig struct {
	IDBits        int                 `yaml:"idBits"`
	Mode          string              `yaml:"mode"`
	JoinMode      string              `yaml:"joinMode"`
	Stabilization StabilizationConfig `yaml:"stabilization"`
	Storage       StorageConfig       `yaml:"storage"`
	Bootstrap     BootstrapConfig     `yaml:"bootstrap"`
}

type NodeConfig struct {
	Id   string `yaml:"id"`
	Bind string `yaml:"bind"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"`
	DHT       DHTConfig       `yaml:"dht"`
	Node      NodeConfig      `yaml:"node"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LoadConfig loads the configuration from a YAML file at the given path.
//
// This function performs only syntactic parsing. Call cfg.ValidateConfig()
// afterward to check for missing or invalid fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration, for node-specific or deployment-dependent fields:
//
//	NODE_ID, NODE_BIND, NODE_HOST, NODE_PORT
//	BOOTSTRAP_MODE, BOOTSTRAP_DNSNAME, BOOTSTRAP_SRV, BOOTSTRAP_PORT, BOOTSTRAP_PEERS, BOOTSTRAP_DIRECTORY_ADDR
//	REGISTER_ENABLED, REGISTER_ZONE_ID, REGISTER_SUFFIX, REGISTER_TTL
//	TRACE_ENABLED, TRACE_EXPORTER, TRACE_ENDPOINT
//	LOGGER_ENABLED, LOGGER_LEVEL, LOGGER_ENCODING, LOGGER_MODE, LOGGER_FILE_PATH
//	DHT_STORAGE_CAPACITY
func (cfg *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NODE_ID"); v != "" {
		cfg.Node.Id = v
	}
	if v := os.Getenv("NODE_BIND"); v != "" {
		cfg.Node.Bind = v
	} else {
		cfg.Node.Bind = "0.0.0.0" // default
	}
	if v := os.Getenv("NODE_HOST"); v != "" {
		cfg.Node.Host = v
	}
	if v := os.Getenv("NODE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Node.Port = port
		}
	}

	if v := os.Getenv("BOOTSTRAP_MODE"); v != "" {
		cfg.DHT.Bootstrap.Mode = v
	}
	if v := os.Getenv("BOOTSTRAP_DNSNAME"); v != "" {
		cfg.DHT.Bootstrap.DNSName = v
	}
	if v := os.Getenv("BOOTSTRAP_SRV"); v != "" {
		v = strings.ToLower(v)
		cfg.DHT.Bootstrap.SRV = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("BOOTSTRAP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.DHT.Bootstrap.Port = port
		}
	}
	if v := os.Getenv("BOOTSTRAP_PEERS"); v != "" {
		cfg.DHT.Bootstrap.Peers = strings.Split(v, ",")
	}
	if v := os.Getenv("BOOTSTRAP_RESOLVER"); v != "" {
		cfg.DHT.Bootstrap.Resolver = v
	}
	if v := os.Getenv("BOOTSTRAP_SERVICE"); v != "" {
		cfg.DHT.Bootstrap.Service = v
	}
	if v := os.Getenv("BOOTSTRAP_PROTO"); v != "" {
		cfg.DHT.Bootstrap.Proto = v
	}
	if v := os.Getenv("BOOTSTRAP_DIRECTORY_ADDR"); v != "" {
		cfg.DHT.Bootstrap.DirectoryAddr = v
	}
	if v := os.Getenv("TRACE_ENABLED"); v != "" {
		v = strings.ToLower(v)
		cfg.Telemetry.Tracing.Enabled = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("TRACE_EXPORTER"); v != "" {
		cfg.Telemetry.Tracing.Exporter = v
	}
	if v := os.Getenv("TRACE_ENDPOINT"); v != "" {
		cfg.Telemetry.Tracing.Endpoint = v
	}
	if v := os.Getenv("REGISTER_ENABLED"); v != "" {
		v = strings.ToLower(v)
		cfg.DHT.Bootstrap.Register.Enabled = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("REGISTER_TYPE"); v != "" {
		cfg.DHT.Bootstrap.Register.Type = v
	}
	if v := os.Getenv("REGISTER_ZONE_ID"); v != "" {
		cfg.DHT.Bootstrap.Register.Route53.HostedZoneID = v
	}
	if v := os.Getenv("REGISTER_SUFFIX"); v != "" {
		cfg.DHT.Bootstrap.Register.Route53.DomainSuffix = v
	}
	if v := os.Getenv("REGISTER_TTL"); v != "" {
		if ttl, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.DHT.Bootstrap.Register.TTL = ttl
		}
	}
	if v := os.Getenv("REGISTER_ETCD_ENDPOINTS"); v != "" {
		cfg.DHT.Bootstrap.Register.CoreDNS.EtcdEndpoints = strings.Split(v, ",")
	}
	if v := os.Getenv("REGISTER_COREDNS_DOMAIN"); v != "" {
		cfg.DHT.Bootstrap.Register.CoreDNS.Domain = v
	}
	if v := os.Getenv("LOGGER_ENABLED"); v != "" {
		v = strings.ToLower(v)
		cfg.Logger.Active = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("LOGGER_ENCODING"); v != "" {
		cfg.Logger.Encoding = v
	}
	if v := os.Getenv("LOGGER_MODE"); v != "" {
		cfg.Logger.Mode = v
	}
	if v := os.Getenv("LOGGER_FILE_PATH"); v != "" {
		cfg.Logger.File.Path = v
	}
	if v := os.Getenv("DHT_JOIN_MODE"); v != "" {
		cfg.DHT.JoinMode = v
	}
	if v := os.Getenv("DHT_STORAGE_CAPACITY"); v != "" {
		if cap, err := strconv.Atoi(v); err == nil {
			cfg.DHT.Storage.Capacity = cap
		}
	}
}

// ValidateConfig performs structural validation of the loaded
// configuration, accumulating every problem found into a single error.
func (cfg *Config) ValidateConfig() error {
	var errs []string

	// --- Logger ---
	switch cfg.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.level: %s", cfg.Logger.Level))
	}
	switch cfg.Logger.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.encoding: %s", cfg.Logger.Encoding))
	}
	switch cfg.Logger.Mode {
	case "stdout":
	case "file":
		if cfg.Logger.File.Path == "" {
			errs = append(errs, "logger.file.path is required when mode=file")
		}
		if cfg.Logger.File.MaxSize < 0 || cfg.Logger.File.MaxBackups < 0 || cfg.Logger.File.MaxAge < 0 {
			errs = append(errs, "logger.file.* values must be non-negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.mode: %s", cfg.Logger.Mode))
	}

	// --- DHT ---
	if cfg.DHT.IDBits <= 0 {
		errs = append(errs, "dht.idBits must be > 0")
	}
	switch cfg.DHT.Mode {
	case "public", "private":
	default:
		errs = append(errs, fmt.Sprintf("invalid dht.mode: %s", cfg.DHT.Mode))
	}
	switch cfg.DHT.JoinMode {
	case "atomic", "incremental":
	default:
		errs = append(errs, fmt.Sprintf("invalid dht.joinMode: %s (must be atomic or incremental)", cfg.DHT.JoinMode))
	}
	if cfg.DHT.Stabilization.StabilizeInterval <= 0 {
		errs = append(errs, "dht.stabilization.stabilizeInterval must be > 0")
	}
	if cfg.DHT.Stabilization.FixFingersInterval <= 0 {
		errs = append(errs, "dht.stabilization.fixFingersInterval must be > 0")
	}
	if cfg.DHT.Stabilization.CheckPredecessorInterval <= 0 {
		errs = append(errs, "dht.stabilization.checkPredecessorInterval must be > 0")
	}
	if cfg.DHT.Stabilization.FailureTimeout <= 0 {
		errs = append(errs, "dht.stabilization.failureTimeout must be > 0")
	}
	if cfg.DHT.Storage.Capacity < 0 {
		errs = append(errs, "dht.storage.capacity must be >= 0 (0 means unbounded)")
	}

	// --- Bootstrap ---
	b := cfg.DHT.Bootstrap
	switch b.Mode {
	case "dns":
		if b.DNSName == "" {
			errs = append(errs, "bootstrap.dnsName is required in mode=dns")
		}
		if b.SRV && (b.Service == "" || b.Proto == "") {
			errs = append(errs, "bootstrap.service and bootstrap.proto are required when srv=true")
		}
		if !b.SRV && b.Port <= 0 {
			errs = append(errs, "bootstrap.port must be > 0 when using A/AAAA (srv=false)")
		}
	case "route53", "coredns":
		if !b.Register.Enabled {
			errs = append(errs, fmt.Sprintf("bootstrap.register.enabled must be true in mode=%s", b.Mode))
		}
		if b.Register.Type != "" && b.Register.Type != b.Mode {
			errs = append(errs, fmt.Sprintf("bootstrap.register.type %q must match bootstrap.mode %q", b.Register.Type, b.Mode))
		}
		if b.Register.TTL <= 0 {
			errs = append(errs, "bootstrap.register.ttl must be > 0")
		}
		switch b.Mode {
		case "route53":
			if b.Register.Route53.HostedZoneID == "" {
				errs = append(errs, "bootstrap.register.route53.hostedZoneId is required in mode=route53")
			}
			if b.Register.Route53.DomainSuffix == "" {
				errs = append(errs, "bootstrap.register.route53.domainSuffix is required in mode=route53")
			}
		case "coredns":
			if len(b.Register.CoreDNS.EtcdEndpoints) == 0 {
				errs = append(errs, "bootstrap.register.coredns.etcdEndpoints is required in mode=coredns")
			}
			if b.Register.CoreDNS.Domain == "" {
				errs = append(errs, "bootstrap.register.coredns.domain is required in mode=coredns")
			}
		}
	case "static":
		for _, p := range b.Peers {
			if _, _, err := net.SplitHostPort(p); err != nil {
				errs = append(errs, fmt.Sprintf("invalid peer address %q in bootstrap.peers: %v", p, err))
			}
		}
	case "directory":
		if _, _, err := net.SplitHostPort(b.DirectoryAddr); err != nil {
			errs = append(errs, fmt.Sprintf("invalid bootstrap.directoryAddr %q: %v", b.DirectoryAddr, err))
		}
	case "init":
		// first node, no extra constraints
	default:
		errs = append(errs, fmt.Sprintf("invalid bootstrap.mode: %s (must be dns, route53, coredns, static, directory or init)", b.Mode))
	}

	// --- Node ---
	if cfg.Node.Port < 0 || cfg.Node.Port > 65535 {
		errs = append(errs, fmt.Sprintf("node.port must be in [0,65535], got %d", cfg.Node.Port))
	}

	// --- Telemetry ---
	if cfg.Telemetry.Tracing.Enabled {
		switch cfg.Telemetry.Tracing.Exporter {
		case "stdout", "jaeger", "otlp":
		default:
			errs = append(errs, fmt.Sprintf("invalid telemetry.tracing.exporter: %s", cfg.Telemetry.Tracing.Exporter))
		}
		if cfg.Telemetry.Tracing.Endpoint == "" {
			errs = append(errs, "telemetry.tracing.endpoint is required")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// LogConfig prints the loaded configuration at DEBUG level, useful for
// debugging startup issues and verifying the configuration was parsed
// as expected.
func (cfg *Config) LogConfig(lgr logger.Logger) {
	lgr.Debug("Loaded configuration",
		// Logger
		logger.F("logger.active", cfg.Logger.Active),
		logger.F("logger.level", cfg.Logger.Level),
		logger.F("logger.encoding", cfg.Logger.Encoding),
		logger.F("logger.mode", cfg.Logger.Mode),
		logger.F("logger.file.path", cfg.Logger.File.Path),
		logger.F("logger.file.maxSizeMB", cfg.Logger.File.MaxSize),
		logger.F("logger.file.maxBackups", cfg.Logger.File.MaxBackups),
		logger.F("logger.file.maxAgeDays", cfg.Logger.File.MaxAge),
		logger.F("logger.file.compress", cfg.Logger.File.Compress),

		// DHT
		logger.F("dht.idBits", cfg.DHT.IDBits),
		logger.F("dht.mode", cfg.DHT.Mode),
		logger.F("dht.joinMode", cfg.DHT.JoinMode),

		// stabilization
		logger.F("dht.stabilization.stabilizeInterval", cfg.DHT.Stabilization.StabilizeInterval.String()),
		logger.F("dht.stabilization.fixFingersInterval", cfg.DHT.Stabilization.FixFingersInterval.String()),
		logger.F("dht.stabilization.checkPredecessorInterval", cfg.DHT.Stabilization.CheckPredecessorInterval.String()),
		logger.F("dht.stabilization.failureTimeout", cfg.DHT.Stabilization.FailureTimeout.String()),

		// storage
		logger.F("dht.storage.capacity", cfg.DHT.Storage.Capacity),

		// bootstrap
		logger.F("dht.bootstrap.mode", cfg.DHT.Bootstrap.Mode),
		logger.F("dht.bootstrap.dnsName", cfg.DHT.Bootstrap.DNSName),
		logger.F("dht.bootstrap.directoryAddr", cfg.DHT.Bootstrap.DirectoryAddr),
		logger.F("dht.bootstrap.srv", cfg.DHT.Bootstrap.SRV),
		logger.F("dht.bootstrap.port", cfg.DHT.Bootstrap.Port),
		logger.F("dht.bootstrap.peers", cfg.DHT.Bootstrap.Peers),
		logger.F("dht.bootstrap.resolver", cfg.DHT.Bootstrap.Resolver),
		logger.F("dht.bootstrap.service", cfg.DHT.Bootstrap.Service),
		logger.F("dht.bootstrap.proto", cfg.DHT.Bootstrap.Proto),

		// register
		logger.F("dht.bootstrap.register.enabled", cfg.DHT.Bootstrap.Register.Enabled),
		logger.F("dht.bootstrap.register.type", cfg.DHT.Bootstrap.Register.Type),
		logger.F("dht.bootstrap.register.ttl", cfg.DHT.Bootstrap.Register.TTL),
		logger.F("dht.bootstrap.register.route53.hostedZoneId", cfg.DHT.Bootstrap.Register.Route53.HostedZoneID),
		logger.F("dht.bootstrap.register.route53.domainSuffix", cfg.DHT.Bootstrap.Register.Route53.DomainSuffix),
		logger.F("dht.bootstrap.register.coredns.etcdEndpoints", cfg.DHT.Bootstrap.Register.CoreDNS.EtcdEndpoints),
		logger.F("dht.bootstrap.register.coredns.basePath", cfg.DHT.Bootstrap.Register.CoreDNS.BasePath),
		logger.F("dht.bootstrap.register.coredns.domain", cfg.DHT.Bootstrap.Register.CoreDNS.Domain),

		// Node
		logger.F("node.id", cfg.Node.Id),
		logger.F("node.host", cfg.Node.Bind),
		logger.F("node.port", cfg.Node.Port),

		// Telemetry
		logger.F("telemetry.tracing.enabled", cfg.Telemetry.Tracing.Enabled),
		logger.F("telemetry.tracing.exporter", cfg.Telemetry.Tracing.Exporter),
		logger.F("telemetry.tracing.endpoint", cfg.Telemetry.Tracing.Endpoint),
	)
}
