// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package confighelpers

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"
)

// Set at link time with -ldflags "-X ...".
var (
	version  = ""
	datetime = ""
	modified = ""
)

var ErrVersion = errors.New("configuration: version requested")

// BeginCommonParse layers the configuration sources. Later sources win:
// flag defaults, --conf.file files, --conf.string, environment variables
// under --conf.env-prefix and finally flags set on the command line.
func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			return nil, ErrVersion
		}
	}
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() != 0 {
		// Unexpected number of parameters
		return nil, fmt.Errorf("unexpected parameter: %s", f.Arg(0))
	}

	k := koanf.New(".")

	// Load defaults from command line defaults, which will be overridden by config file
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	for _, configFile := range k.Strings("conf.file") {
		if len(configFile) == 0 {
			continue
		}
		if err := k.Load(file.Provider(configFile), json.Parser()); err != nil {
			return nil, fmt.Errorf("error loading local config file %s: %w", configFile, err)
		}
	}

	if configString := k.String("conf.string"); len(configString) > 0 {
		if err := k.Load(rawbytes.Provider([]byte(configString)), json.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config string: %w", err)
		}
	}

	if envPrefix := k.String("conf.env-prefix"); len(envPrefix) != 0 {
		if err := loadEnvironmentVariables(k, envPrefix); err != nil {
			return nil, fmt.Errorf("error loading environment variables: %w", err)
		}
	}

	// Any settings explicitly set on the command line override everything else
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading command line options: %w", err)
	}

	return k, nil
}

// loadEnvironmentVariables maps PREFIX_RPC_BODY__LIMIT to rpc.body-limit.
func loadEnvironmentVariables(k *koanf.Koanf, envPrefix string) error {
	prefix := strings.ToUpper(envPrefix) + "_"
	return k.Load(env.ProviderWithValue(prefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, prefix))
		key = strings.ReplaceAll(key, "__", "-")
		key = strings.ReplaceAll(key, "_", ".")
		return key, value
	}), nil)
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused: true,

		// Default values
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Metadata:         nil,
		Result:           config,
		TagName:          "koanf",
		WeaklyTypedInput: true,
	}
	err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig})
	if err != nil {
		return err
	}
	return nil
}

// DumpConfig applies overrides, typically blanking secrets, before the
// configuration is printed.
func DumpConfig(k *koanf.Koanf, extraOverrideFields map[string]interface{}) error {
	overrideFields := map[string]interface{}{"conf.dump": false}
	for key, value := range extraOverrideFields {
		overrideFields[key] = value
	}
	return k.Load(confmap.Provider(overrideFields, "."), nil)
}

func PrintErrorAndExit(err error, usage func(string)) {
	vcsRevision, _, vcsTime := GetVersion()
	fmt.Printf("Version: %v, time: %v\n", vcsRevision, vcsTime)
	if errors.Is(err, ErrVersion) {
		os.Exit(0)
	}
	if err != nil && errors.Is(err, flag.ErrHelp) {
		// Usage was already printed
		usage(os.Args[0])
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "%s\n", err.Error())
	usage(os.Args[0])
	os.Exit(1)
}

// GetVersion returns the full revision, the revision stripped to seven
// characters, and the commit time.
func GetVersion() (string, string, string) {
	vcsRevision := version
	vcsTime := datetime
	vcsModified := modified
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if vcsRevision == "" {
					vcsRevision = setting.Value
				}
			case "vcs.time":
				if vcsTime == "" {
					vcsTime = setting.Value
				}
			case "vcs.modified":
				if vcsModified == "" {
					vcsModified = setting.Value
				}
			}
		}
	}
	if vcsRevision == "" {
		vcsRevision = "development"
	}
	strippedRevision := vcsRevision
	if len(strippedRevision) > 7 {
		strippedRevision = strippedRevision[:7]
	}
	if vcsModified == "true" {
		vcsRevision += "-modified"
	}
	if parsed, err := time.Parse(time.RFC3339, vcsTime); err == nil {
		vcsTime = parsed.Format("2006-01-02T15:04:05-0700")
	}
	return vcsRevision, strippedRevision, vcsTime
}
