package sstruct

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option configures a parse.
type Option func(*options) error

type options struct {
	meta      *Record
	trimValue bool
	trimMeta  bool
	log       *zap.Logger
	fs        afero.Fs
}

func defaultOptions() options {
	return options{
		trimValue: true,
		trimMeta:  true,
		log:       zap.NewNop(),
		fs:        afero.NewOsFs(),
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	if o.meta == nil {
		o.meta = NewRecord()
	}
	return o, nil
}

// Meta returns an Option that makes the parser store field comments in rec,
// so the caller can read them once parsing completes. Existing entries of
// rec are kept unless a field with the same name is parsed. rec is only
// written once the whole input has been read; a parse that fails leaves it
// untouched.
func Meta(rec *Record) Option {
	return func(o *options) error {
		if rec == nil {
			return fmt.Errorf("sstruct: meta record must not be nil")
		}
		o.meta = rec
		return nil
	}
}

// TrimValue controls whether leading and trailing blank lines are removed
// from field values. It is on by default.
func TrimValue(on bool) Option {
	return func(o *options) error {
		o.trimValue = on
		return nil
	}
}

// TrimMeta controls whether leading and trailing blank lines are removed
// from field comments. It is on by default.
func TrimMeta(on bool) Option {
	return func(o *options) error {
		o.trimMeta = on
		return nil
	}
}

// Logger sets the logger that receives parse diagnostics, such as lines that
// could not be classified. Logging never affects the result.
func Logger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("sstruct: logger must not be nil")
		}
		o.log = l
		return nil
	}
}

// FileSystem sets the filesystem ParseFile opens files from.
func FileSystem(fs afero.Fs) Option {
	return func(o *options) error {
		if fs == nil {
			return fmt.Errorf("sstruct: filesystem must not be nil")
		}
		o.fs = fs
		return nil
	}
}
