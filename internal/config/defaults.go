package config

import "time"

// Built-in fallback values applied after all explicit sources.
const (
	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":3000"

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "todo-api"

	// DefaultTokenDuration is the token lifetime used when none is
	// configured: 1800 seconds.
	DefaultTokenDuration = 30 * time.Minute

	// DefaultBaseURL is the base address used to derive todo item URLs when
	// none is configured.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultDSN is the SQLite file used when no database is configured.
	DefaultDSN = "todos.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BaseURL:       DefaultBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDSN,
			},
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
	}
}
