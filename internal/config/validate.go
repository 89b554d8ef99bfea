package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically. All violations are reported together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("auth token TTLs must be positive"))
	}

	if err := c.Practice.validate(); err != nil {
		errs = append(errs, fmt.Errorf("practice: %w", err))
	}
	if err := c.Prediction.validate(); err != nil {
		errs = append(errs, fmt.Errorf("prediction: %w", err))
	}
	if err := c.Storage.validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	return errors.Join(errs...)
}

func (p *PracticeConfig) validate() error {
	if p.PassThreshold < 0 || p.PassThreshold > 1 {
		return fmt.Errorf("pass_threshold must be in [0, 1] (got %v)", p.PassThreshold)
	}
	if p.MaxAnswers <= 0 {
		return fmt.Errorf("max_answers must be > 0 (got %d)", p.MaxAnswers)
	}
	if p.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", p.RetentionDays)
	}
	if p.MaxAnalyzeBatch <= 0 {
		return fmt.Errorf("max_analyze_batch must be > 0 (got %d)", p.MaxAnalyzeBatch)
	}
	return nil
}

func (p *PredictionConfig) validate() error {
	if !p.Enabled {
		return nil
	}
	u, err := url.Parse(p.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must be an absolute URL when enabled (got %q)", p.URL)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Endpoint == "" || s.Bucket == "" {
		return errors.New("endpoint and bucket are required when enabled")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}
