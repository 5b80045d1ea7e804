// Package configuration loads parameters from config files, environment variables and command line flags into a single
// koanf instance and keeps structs that were bound to it in sync.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/ioutils"
	reflectutils "github.com/iotaledger/hive.go/runtime/reflect"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = ierrors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
	// boundParameters keeps track of all parameters that were bound using the BindParameters function.
	boundParameters map[string]*BoundParameter
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config:          koanf.New("."),
		boundParameters: make(map[string]*BoundParameter),
	}
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	exists, isDir, err := ioutils.PathExists(filePath)
	if err != nil {
		return err
	}
	if !exists {
		return ierrors.Wrapf(ErrConfigDoesNotExist, "%s", filePath)
	}
	if isDir {
		return ierrors.Errorf("given path is a directory instead of a file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// StoreFile stores the current config to a JSON or YAML file.
func (c *Configuration) StoreFile(filePath string, perm os.FileMode) error {
	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(c.config.Raw())
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return ierrors.Wrap(err, "unable to save config file")
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// SetDefault sets the default value for the key (case-insensitive).
// Default is only applied if no value is provided via flag, file or env vars.
func (c *Configuration) SetDefault(path string, value any) error {
	if c.config.Exists(strings.ToLower(path)) {
		// do not override values that already exist in the config
		return nil
	}

	return c.Set(path, value)
}

// Set sets the value for the key (case-insensitive).
func (c *Configuration) Set(path string, value any) error {
	return c.config.Load(confmap.Provider(map[string]any{
		strings.ToLower(path): value,
	}, "."), nil)
}

// Exists returns true if the key (case-insensitive) exists in the config.
func (c *Configuration) Exists(path string) bool {
	return c.config.Exists(strings.ToLower(path))
}

// Get returns the raw value of the key (case-insensitive).
func (c *Configuration) Get(path string) any {
	return c.config.Get(strings.ToLower(path))
}

// String returns the string value of the key (case-insensitive).
func (c *Configuration) String(path string) string {
	return c.config.String(strings.ToLower(path))
}

// Strings returns the string slice value of the key (case-insensitive).
func (c *Configuration) Strings(path string) []string {
	return c.config.Strings(strings.ToLower(path))
}

// Bool returns the bool value of the key (case-insensitive).
func (c *Configuration) Bool(path string) bool {
	return c.config.Bool(strings.ToLower(path))
}

// Int64 returns the int64 value of the key (case-insensitive).
func (c *Configuration) Int64(path string) int64 {
	return c.config.Int64(strings.ToLower(path))
}

// Float64 returns the float64 value of the key (case-insensitive).
func (c *Configuration) Float64(path string) float64 {
	return c.config.Float64(strings.ToLower(path))
}

// Duration returns the time.Duration value of the key (case-insensitive).
func (c *Configuration) Duration(path string) time.Duration {
	return c.config.Duration(strings.ToLower(path))
}

// Unmarshal unmarshals the value of the key (case-insensitive) into the given struct using its json tags.
func (c *Configuration) Unmarshal(path string, o any) error {
	return c.config.UnmarshalWithConf(strings.ToLower(path), o, koanf.UnmarshalConf{Tag: "json"})
}

// BoundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type BoundParameter struct {
	Name         string
	ShortHand    string
	Usage        string
	DefaultVal   any
	BoundPointer any
	BoundType    reflect.Type
}

// BoundParameters returns the parameters that were bound using the BindParameters function.
func (c *Configuration) BoundParameters() map[string]*BoundParameter {
	return c.boundParameters
}

// BindParameters defines and binds a flag for every field of the given struct.
//
// The parameter names are determined by the names of the fields in the struct (lower camel cased) but they can be
// overridden by providing a name tag. The default value is the value of the field unless it is the zero value and a
// default tag exists. The usage information is determined by the usage tag of the field. Nested structs get
// translated to parameter names in the form "namespace.struct.parameterName", an empty namespace omits the first level.
func (c *Configuration) BindParameters(flagset *flag.FlagSet, namespace string, pointerToStruct any) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := range val.NumField() {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name, exists := typeField.Tag.Lookup("name")
		if !exists {
			name = LowerCamelCase(typeField.Name)
		}
		if namespace != "" {
			name = namespace + "." + name
		}

		shortHand, _ := typeField.Tag.Lookup("shorthand")
		usage, _ := typeField.Tag.Lookup("usage")
		tagDefaultValue, hasTagDefault := typeField.Tag.Lookup("default")
		useTagDefault := hasTagDefault && valueField.IsZero()

		//nolint:forcetypeassert // false positive
		switch defaultValue := valueField.Interface().(type) {
		case bool:
			if useTagDefault {
				defaultValue = mustParse(name, tagDefaultValue, strconv.ParseBool)
			}
			flagset.BoolVarP(valueField.Addr().Interface().(*bool), name, shortHand, defaultValue, usage)

		case time.Duration:
			if useTagDefault {
				defaultValue = mustParse(name, tagDefaultValue, time.ParseDuration)
			}
			flagset.DurationVarP(valueField.Addr().Interface().(*time.Duration), name, shortHand, defaultValue, usage)

		case float64:
			if useTagDefault {
				defaultValue = mustParse(name, tagDefaultValue, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
			}
			flagset.Float64VarP(valueField.Addr().Interface().(*float64), name, shortHand, defaultValue, usage)

		case int64:
			if useTagDefault {
				defaultValue = mustParse(name, tagDefaultValue, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
			}
			flagset.Int64VarP(valueField.Addr().Interface().(*int64), name, shortHand, defaultValue, usage)

		case string:
			if useTagDefault {
				defaultValue = tagDefaultValue
			}
			flagset.StringVarP(valueField.Addr().Interface().(*string), name, shortHand, defaultValue, usage)

		case []string:
			if useTagDefault {
				defaultValue = []string{}
				if tagDefaultValue != "" {
					defaultValue = strings.Split(tagDefaultValue, ",")
				}
			}
			flagset.StringSliceVarP(valueField.Addr().Interface().(*[]string), name, shortHand, defaultValue, usage)

		default:
			if valueField.Kind() != reflect.Struct {
				panic(fmt.Sprintf("could not bind '%s' because its type %s is not supported", name, valueField.Type()))
			}

			// recursively walk the value, but do no add it as a parameter
			c.BindParameters(flagset, name, valueField.Addr().Interface())

			continue
		}

		c.boundParameters[strings.ToLower(name)] = &BoundParameter{
			Name:         name,
			ShortHand:    shortHand,
			Usage:        usage,
			DefaultVal:   valueField.Interface(),
			BoundPointer: valueField.Addr().Interface(),
			BoundType:    valueField.Type(),
		}
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for _, boundParameter := range c.boundParameters {
		parameterName := boundParameter.Name

		//nolint:forcetypeassert // type switch with reflect.Type
		switch boundParameter.BoundType {
		case reflectutils.BoolType:
			*(boundParameter.BoundPointer.(*bool)) = c.Bool(parameterName)
		case reflectutils.TimeDurationType:
			*(boundParameter.BoundPointer.(*time.Duration)) = c.Duration(parameterName)
		case reflectutils.Float64Type:
			*(boundParameter.BoundPointer.(*float64)) = c.Float64(parameterName)
		case reflectutils.Int64Type:
			*(boundParameter.BoundPointer.(*int64)) = c.Int64(parameterName)
		case reflectutils.StringType:
			*(boundParameter.BoundPointer.(*string)) = c.String(parameterName)
		case reflectutils.StringSliceType:
			*(boundParameter.BoundPointer.(*[]string)) = c.Strings(parameterName)
		}
	}
}

// LowerCamelCase converts the first letters of the given string to lower case ("HTTPServer" becomes "httpServer").
func LowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

func parserForFile(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return &JSONLowerParser{indent: "  "}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}
}

func mustParse[T any](name string, tagDefaultValue string, parse func(string) (T, error)) T {
	value, err := parse(tagDefaultValue)
	if err != nil {
		panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
	}

	return value
}
