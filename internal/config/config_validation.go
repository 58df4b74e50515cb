package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// TokenSignKey is intentionally not required here: protected routes report
// its absence as 500 per request instead of preventing startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" || cfg.App.BaseURL == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
