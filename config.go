// FILE: config.go
package rotatelog

import (
	"errors"

	"github.com/lixenwraith/config"
)

// attrKeys lists every recognized AttributeBag key, in the order
// config.go looks them up. Unknown keys in the TOML file are accepted
// too (the bag stores unrecognized keys), but only these are probed
// explicitly since lixenwraith/config requires a key to look up.
var attrKeys = []string{
	AttrCompressionMode,
	AttrRotate,
	AttrRotateSize,
	AttrRotateInterval,
	AttrArchive,
	AttrPurge,
	AttrTimes,
}

// LoadAttrsFromFile loads attribute values from a TOML file under the
// "rotatelog." prefix, using github.com/lixenwraith/config the way the
// teacher's config.go uses it for its own Config struct: register each
// key, load the file, then read each key through the loader's Get and
// keep it if it is a non-empty string. Missing keys simply keep their
// AttributeBag defaults.
func LoadAttrsFromFile(path string) (*Attrs, error) {
	attrs := NewAttrs()

	loader := config.New()
	for _, key := range attrKeys {
		if err := loader.Register("rotatelog."+key, ""); err != nil {
			return nil, newError(ErrInvalidConfig, "load_config", path, err)
		}
	}
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, newError(ErrInvalidConfig, "load_config", path, err)
	}

	for _, key := range attrKeys {
		raw, found := loader.Get("rotatelog." + key)
		if !found {
			continue
		}
		val, ok := raw.(string)
		if !ok || val == "" {
			continue
		}
		attrs.Put(key, val)
	}

	return attrs, nil
}

// NewChannelFromFile constructs a FileChannel for primaryPath, seeding
// its attribute bag from a TOML config file at configPath.
func NewChannelFromFile(configPath, primaryPath string) (*FileChannel, error) {
	attrs, err := LoadAttrsFromFile(configPath)
	if err != nil {
		return nil, err
	}

	c := New(primaryPath)
	for _, key := range attrKeys {
		if v, ok := attrs.Get(key); ok {
			c.PutAttr(key, v)
		}
	}
	return c, nil
}
