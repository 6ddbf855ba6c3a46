package distsurvey

import (
	"go.uber.org/zap"

	"github.com/tsawler/distsurvey/config"
	"github.com/tsawler/distsurvey/source"
)

// convertOptions holds the configuration of a Converter.
type convertOptions struct {
	// Page selection (1-indexed, as given by the caller)
	pages []int

	// Running header/footer filtering, added to the config settings
	excludeHeaders bool
	excludeFooters bool

	cfg    *config.Config
	loader source.Loader
	logger *zap.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		pages: nil, // nil means all pages
	}
}

// clone copies the options. The config, loader and logger are shared.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	newOpts.pages = nil
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}

func (o convertOptions) config() *config.Config {
	if o.cfg == nil {
		return config.DefaultConfig()
	}
	return o.cfg
}

func (o convertOptions) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}
