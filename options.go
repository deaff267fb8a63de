package mapper

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/logging"
	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
)

// DefaultRefreshInterval is how often the target dataset is reloaded
// when auto-refresh is on.
const DefaultRefreshInterval = time.Hour

// Option configures a Mapper instance.
type Option func(*options) error

type options struct {
	dataset         DatasetProvider
	fetcher         TrimFetcher
	country         string
	profiles        match.Profiles
	refreshInterval time.Duration
	logger          *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		country:         "it",
		profiles:        match.BuiltinProfiles(),
		refreshInterval: DefaultRefreshInterval,
		logger:          logging.Default(),
	}
}

// WithDataset configures the target dataset provider.
func WithDataset(provider DatasetProvider) Option {
	return func(o *options) error {
		o.dataset = provider
		return nil
	}
}

// WithFetcher configures the source record fetcher.
func WithFetcher(fetcher TrimFetcher) Option {
	return func(o *options) error {
		o.fetcher = fetcher
		return nil
	}
}

// WithCountry configures the dataset country. Default "it".
func WithCountry(country string) Option {
	return func(o *options) error {
		if country == "" {
			return &errors.ValidationError{
				Field:   "country",
				Message: "country must not be empty",
			}
		}
		o.country = country
		return nil
	}
}

// WithProfiles replaces the builtin weight profile registry.
func WithProfiles(profiles match.Profiles) Option {
	return func(o *options) error {
		if _, err := profiles.Get(match.DefaultProfile); err != nil {
			return &errors.ConfigError{
				Component: "mapper",
				Message:   "profile registry must contain a default profile",
				Err:       err,
			}
		}
		o.profiles = profiles
		return nil
	}
}

// WithRefreshInterval configures how often auto-refresh reloads the
// dataset.
func WithRefreshInterval(interval time.Duration) Option {
	return func(o *options) error {
		if interval <= 0 {
			return &errors.ValidationError{
				Field:   "refreshInterval",
				Value:   interval.String(),
				Message: "refresh interval must be positive",
			}
		}
		o.refreshInterval = interval
		return nil
	}
}

// WithLogger configures the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}
