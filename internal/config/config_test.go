package config

import "testing"

func validConfig() *Config {
	return &Config{
		Logger: LoggerConfig{Active: true, Level: "info", Encoding: "console", Mode: "stdout"},
		DHT: DHTConfig{
			IDBits:   8,
			Mode:     "private",
			JoinMode: "incremental",
			Stabilization: StabilizationConfig{
				StabilizeInterval:        1,
				FixFingersInterval:       1,
				CheckPredecessorInterval: 1,
				FailureTimeout:           1,
			},
			Storage:   StorageConfig{Capacity: 1000},
			Bootstrap: BootstrapConfig{Mode: "init"},
		},
		Node: NodeConfig{Port: 7000},
	}
}

func TestValidateConfigAccepted(t *testing.T) {
	if err := validConfig().ValidateConfig(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestValidateConfigRejectsBadIDBits(t *testing.T) {
	cfg := validConfig()
	cfg.DHT.IDBits = 0
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for idBits == 0")
	}
}

func TestValidateConfigRejectsStaticPeerWithoutPort(t *testing.T) {
	cfg := validConfig()
	cfg.DHT.Bootstrap.Mode = "static"
	cfg.DHT.Bootstrap.Peers = []string{"not-a-valid-addr"}
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for malformed static peer address")
	}
}

func TestValidateConfigRejectsNegativeStorageCapacity(t *testing.T) {
	cfg := validConfig()
	cfg.DHT.Storage.Capacity = -1
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for negative storage capacity")
	}
}

func TestApplyEnvOverridesStorageCapacity(t *testing.T) {
	t.Setenv("DHT_STORAGE_CAPACITY", "42")
	cfg := validConfig()
	cfg.ApplyEnvOverrides()
	if cfg.DHT.Storage.Capacity != 42 {
		t.Errorf("expected capacity override to 42, got %d", cfg.DHT.Storage.Capacity)
	}
}
