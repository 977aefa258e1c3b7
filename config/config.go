// Package config loads typed configuration from an optional file and the environment, backed by Viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

type (
	// Options drives how Load resolves configuration values.
	Options struct {
		prefix string
		file   string
	}

	// Option modifies the Options used by Load.
	Option func(opts *Options)

	// WithDefault is implemented by configurations able to fill their missing values.
	WithDefault interface {
		ApplyDefault()
	}
)

// WithEnvPrefix sets the prefix of the environment variables, FOO makes key bar.baz read FOO_BAR_BAZ.
func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithFile reads the given file before the environment, its format is guessed from the extension.
func WithFile(path string) Option {
	return func(opts *Options) {
		opts.file = path
	}
}

// Load builds a T from the configured file and the environment, environment taking precedence.
func Load[T any](opts ...Option) (*T, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if options.file != "" {
		v.SetConfigFile(options.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", options.file, err)
		}
	}

	var vT T
	bindEnvs(v, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if withDefault, ok := any(&vT).(WithDefault); ok {
		withDefault.ApplyDefault()
	}

	return &vT, nil
}

// bindEnvs registers every scalar leaf of the struct type, so that values only
// present in the environment are seen by Unmarshal.
func bindEnvs(v *viper.Viper, typ reflect.Type, parts ...string) {
	if typ == nil {
		return
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}
		name = strings.ToLower(strings.Split(name, ",")[0])

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		switch fieldType.Kind() {
		case reflect.Struct:
			bindEnvs(v, fieldType, append(parts, name)...)
		case reflect.Map, reflect.Slice, reflect.Array:
			// collections are only read from files
		default:
			_ = v.BindEnv(strings.Join(append(parts, name), "."))
		}
	}
}
