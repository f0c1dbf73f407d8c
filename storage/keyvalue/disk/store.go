// Package diskkv implements core.KVStore on top of diskv, one file per key.
package diskkv

import (
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core"
)

const defaultCacheSizeMax = 1024 * 1024 // 1MB

type Options struct {
	BasePath     string
	CacheSizeMax uint64
}

// Store is a core.KVStore persisted under Options.BasePath.
type Store struct {
	d *diskv.Diskv
}

var _ core.KVStore = (*Store)(nil)

func Open(opts Options) (*Store, error) {
	if opts.BasePath == "" {
		return nil, errors.New("diskkv: base path is required")
	}
	if err := os.MkdirAll(opts.BasePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", opts.BasePath)
	}
	if opts.CacheSizeMax == 0 {
		opts.CacheSizeMax = defaultCacheSizeMax
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     opts.BasePath,
		Transform:    flatTransform,
		CacheSizeMax: opts.CacheSizeMax,
	})}, nil
}

// NewFromConfig opens the store configured under conf.Storage.
func NewFromConfig(conf *core.Config) (*Store, error) {
	return Open(Options{BasePath: conf.Storage.Dir, CacheSizeMax: conf.Storage.CacheSizeMax})
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string { return []string{} }

func (s *Store) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "reading %q", key)
	}
	return string(val), true, nil
}

func (s *Store) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return errors.Wrapf(s.d.Write(key, []byte(value)), "writing %q", key)
}

func (s *Store) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	return errors.Wrapf(s.d.Erase(key), "erasing %q", key)
}

// Keys returns the stored keys.
func (s *Store) Keys() []string {
	keys := make([]string, 0)
	for key := range s.d.Keys(nil) {
		keys = append(keys, key)
	}
	return keys
}

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return errors.Errorf("diskkv: invalid key %q", key)
	}
	return nil
}
