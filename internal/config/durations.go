package config

import "time"

// durationOr parses value, returning fallback when it is empty or malformed. LoadConfig
// rejects malformed values, so the fallback only applies to configs built in code.
func durationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ReadTimeout bounds reading one request, headers and body included.
func (c *Config) ReadTimeout() time.Duration {
	return durationOr(c.Server.ReadTimeout, 10*time.Second)
}

// WriteTimeout bounds writing one response.
func (c *Config) WriteTimeout() time.Duration {
	return durationOr(c.Server.WriteTimeout, 10*time.Second)
}

// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
func (c *Config) ShutdownTimeout() time.Duration {
	return durationOr(c.Server.ShutdownTimeout, 10*time.Second)
}

// ConnMaxLifetime caps the age of a pooled database connection.
func (c *Config) ConnMaxLifetime() time.Duration {
	return durationOr(c.Database.ConnMaxLifetime, time.Hour)
}

// ListQueryTimeout bounds the count and page reads of one list request.
func (c *Config) ListQueryTimeout() time.Duration {
	return durationOr(c.Listing.QueryTimeout, 5*time.Second)
}

// AccessTokenTTL is the lifetime of an issued access token.
func (c *Config) AccessTokenTTL() time.Duration {
	return durationOr(c.JWT.AccessTokenExpiration, 24*time.Hour)
}
