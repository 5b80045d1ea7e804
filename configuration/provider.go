package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerPosflag is a koanf.Provider for command line flags with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that reads the flags of the given FlagSet into a nested map, where the
// nesting of the keys is defined by delim ("parent.child: 1" becomes {parent: {child: 1}}).
//
// Default values of flags that were not changed on the command line are only used if the key does not exist in the
// given Koanf instance yet.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]any, error) {
	flat := make(map[string]any)
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		flat[key] = posflag.FlagVal(p.flagset, f)
	})

	return maps.Unflatten(flat, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(func(event any, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}
