package xconfig

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidConfig is returned when Load is not given a pointer to a struct.
var ErrInvalidConfig = errors.New("xconfig: config must be a non-nil pointer to a struct")

type Options struct {
	files     []string
	envPrefix string
	useEnv    bool
	strict    bool
}

type Option func(*Options)

// WithFiles adds configuration files, applied in order. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv enables environment overrides for variables named PREFIX_FIELD.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
		o.useEnv = true
	}
}

// WithStrict rejects unknown fields in configuration files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

// Load fills config from, in order: `default` struct tags and Default()
// methods, configuration files, environment variables.
func Load(config any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	elem, err := configElem(config)
	if err != nil {
		return err
	}

	if err := applyDefaults(elem); err != nil {
		return fmt.Errorf("failed to apply defaults: %w", err)
	}

	for _, filename := range opts.files {
		if err := loadFromFile(config, filename, opts.strict); err != nil {
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}

	if opts.useEnv {
		if err := loadFromEnv(elem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load environment: %w", err)
		}
	}

	return nil
}

func configElem(config any) (reflect.Value, error) {
	v := reflect.ValueOf(config)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidConfig
	}
	return v.Elem(), nil
}
