package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be > 0 (got %d)", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0 (got %v)", c.RateLimit.Window)
	}

	switch c.Storage.Backend {
	case StorageBackendMemory:
	case StorageBackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when storage.backend is %q", StorageBackendPostgres)
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)",
			StorageBackendMemory, StorageBackendPostgres, c.Storage.Backend)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}
