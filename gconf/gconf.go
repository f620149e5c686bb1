package gconf

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/redeem/errors"
)

// Options are the top level attributes of a configuration document. The
// content of each attribute is decoded only when requested.
type Options map[string]json.RawMessage

// ReadOptions decodes the attribute with given key into obj. Unknown
// attributes of obj are rejected.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode %q: %s", key, err)
	}
	return nil
}

// Parse decodes a configuration document.
func Parse(raw []byte) (Options, error) {
	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot parse configuration: %s", err)
	}
	return opts, nil
}

// LoadFile reads and parses the configuration document stored in the named
// file.
func LoadFile(filename string) (Options, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "cannot read configuration: %s", err)
	}
	return Parse(raw)
}

// Configuration is implemented by any structure that can be loaded from a
// configuration section.
type Configuration interface {
	Validate() error
}

// InitConfig will take opts["conf"][pkg], parse it into the given
// Configuration object and validate it.
// Returns an error if anything goes wrong
func InitConfig(opts Options, pkg string, conf Configuration) error {
	var confOptions Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if _, ok := confOptions[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no configuration for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "validate configuration for %s", pkg)
	}
	return nil
}

// Save encodes given configuration as the pkg section of opts. The
// configuration is validated first.
func Save(opts Options, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "validation: %s", pkg)
	}
	raw, err := json.Marshal(conf)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "marshal %s: %s", pkg, err)
	}

	var confOptions Options
	if existing, ok := opts["conf"]; ok {
		if err := json.Unmarshal(existing, &confOptions); err != nil {
			return errors.Wrapf(errors.ErrInput, "conf section: %s", err)
		}
	}
	if confOptions == nil {
		confOptions = make(Options)
	}
	confOptions[pkg] = raw

	section, err := json.Marshal(confOptions)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "marshal conf: %s", err)
	}
	opts["conf"] = section
	return nil
}
