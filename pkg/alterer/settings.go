package alterer

import (
	"reflect"

	"github.com/pkg/errors"
)

// Settings is implemented by every settings holder. The concrete type of an instance is its identity.
type Settings interface {
	SettingsName() string
}

// SettingsAlterer is a view over a set of settings keyed by their concrete type.
type SettingsAlterer struct {
	index map[reflect.Type]Settings
	names map[string]Settings
	opts  options
	err   error
}

// NewSettings indexes settings by type and by name.
// Every instance must be a non-nil pointer so alterations reach the caller's data.
// Two instances of the same type, or with the same name, is a DuplicateKeyError.
func NewSettings(settings []Settings, opts ...Option) (*SettingsAlterer, error) {
	index := make(map[reflect.Type]Settings, len(settings))
	names := make(map[string]Settings, len(settings))
	for i, s := range settings {
		if s == nil {
			return nil, errors.Wrapf(ErrInvalidSettings, "settings at %d is nil", i)
		}

		typ := reflect.TypeOf(s)
		v := reflect.ValueOf(s)
		if typ.Kind() != reflect.Ptr || v.IsNil() {
			return nil, errors.Wrapf(ErrInvalidSettings, "%s is not a non-nil pointer", typ)
		}
		if _, dup := index[typ]; dup {
			return nil, &DuplicateKeyError{Key: typ.String()}
		}

		name := s.SettingsName()
		if _, dup := names[name]; dup {
			return nil, &DuplicateKeyError{Key: name}
		}

		index[typ] = s
		names[name] = s
	}

	return &SettingsAlterer{
		index: index,
		names: names,
		opts:  newOptions(opts),
	}, nil
}

// AlterSettings applies mutate to the instance whose type is exactly *S.
func AlterSettings[S any, PS interface {
	*S
	Settings
}](a *SettingsAlterer, mutate func(PS)) *SettingsAlterer {
	typ := reflect.TypeOf((*S)(nil))

	s, ok := a.index[typ]
	if !ok {
		a.err = a.opts.miss(a.err, "alter", typ.String())
		return a
	}

	mutate(s.(PS))
	return a
}

// AlterNamed applies mutate to the instance whose SettingsName is name.
func (a *SettingsAlterer) AlterNamed(name string, mutate func(Settings)) *SettingsAlterer {
	s, ok := a.names[name]
	if !ok {
		a.err = a.opts.miss(a.err, "alter", name)
		return a
	}

	mutate(s)
	return a
}

// Err returns every miss recorded under the strict policy.
func (a *SettingsAlterer) Err() error {
	return a.err
}
