package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/svgcomp"
)

const (
	defaultConfigFile = ".svgcomp.yaml"
	envPrefix         = "SVGCOMP_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags that were explicitly set
	// are loaded; flag defaults must not shadow the file or the environment.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SVGCOMP_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	SVGCOMP_GENERATE_OUT_DIR -> generate.out-dir
//	SVGCOMP_VERBOSE          -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "generate_"); ok {
		return "generate." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// generateConfig is the resolved configuration of a generate run
type generateConfig struct {
	Inputs       []string
	OutDir       string
	Recursive    bool
	Index        bool
	ExportType   svgcomp.ExportType
	DryRun       bool
	OutputFormat string
	Batch        svgcomp.BatchOptions
}

// buildGenerateConfig constructs the run configuration from koanf state.
// Positional arguments replace the configured inputs.
func buildGenerateConfig(args []string) (generateConfig, error) {
	defaults := svgcomp.DefaultOptions()

	opts := svgcomp.Options{
		Prefix: genString("prefix", ""),
		Suffix: genString("suffix", ""),

		Framework:      svgcomp.Framework(strings.ToLower(genString("framework", string(defaults.Framework)))),
		TypeScript:     genBool("typescript", defaults.TypeScript),
		Memo:           genBool("memo", defaults.Memo),
		Ref:            genBool("ref", defaults.Ref),
		NativeProps:    genBool("native-props", defaults.NativeProps),
		NamedExport:    genBool("named-export", defaults.NamedExport),
		CompositionAPI: genBool("composition-api", defaults.CompositionAPI),
		ScriptSetup:    genBool("script-setup", defaults.ScriptSetup),

		Dimensions:         svgcomp.DimensionMode(genString("dimensions", string(defaults.Dimensions))),
		SplitColors:        genBool("split-colors", defaults.SplitColors),
		SplitSpecialColors: genBool("split-special-colors", defaults.SplitSpecialColors),
		SplitStrokeWidths:  genBool("split-stroke-widths", defaults.SplitStrokeWidths),
		FixedStrokeWidth:   genBool("fixed-stroke-width", defaults.FixedStrokeWidth),
		FillPolicy:         svgcomp.FillPolicy(genString("fill-policy", string(svgcomp.FillOff))),
		Accessibility:      genBool("a11y", defaults.Accessibility),
		IDPrefix:           genString("id-prefix", ""),
		RemoveComments:     genBool("remove-comments", defaults.RemoveComments),
		RemoveDuplicates:   genBool("remove-duplicates", defaults.RemoveDuplicates),
		RemoveEditorData:   genBool("remove-editor-data", defaults.RemoveEditorData),

		Optimize:      genBool("optimize", defaults.Optimize),
		RemoveViewBox: genBool("remove-viewbox", defaults.RemoveViewBox),
		Precision:     getIntWithFallback("precision", "generate.precision", defaults.Precision),

		Strict: genBool("strict", false),
	}

	config := generateConfig{
		Inputs:       resolveInputs(args),
		OutDir:       genString("out-dir", "src/components/icons"),
		Recursive:    genBool("recursive", true),
		Index:        genBool("index", true),
		ExportType:   svgcomp.ExportType(genString("export-type", string(svgcomp.ExportNamed))),
		DryRun:       genBool("dry-run", false),
		OutputFormat: genString("output-format", ""),
		Batch: svgcomp.BatchOptions{
			Options:     opts,
			Concurrency: getIntWithFallback("concurrency", "generate.concurrency", 0),
		},
	}

	return config, config.validate()
}

// resolveInputs returns positional args, or the configured inputs
func resolveInputs(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if inputs := k.Strings("input"); len(inputs) > 0 {
		return inputs
	}
	if inputs := k.Strings("generate.input"); len(inputs) > 0 {
		return inputs
	}
	return []string{"icons"}
}

// validate rejects enum values the library would not recognize
func (c generateConfig) validate() error {
	o := c.Batch.Options
	switch o.Framework {
	case svgcomp.React, svgcomp.Vue:
	default:
		return fmt.Errorf("invalid framework %q (use react or vue)", o.Framework)
	}
	switch o.Dimensions {
	case svgcomp.DimensionsKeep, svgcomp.DimensionsRemove, svgcomp.DimensionsSize:
	default:
		return fmt.Errorf("invalid dimensions %q (use keep, remove or size)", o.Dimensions)
	}
	switch o.FillPolicy {
	case svgcomp.FillOff, svgcomp.FillCurrentColor, svgcomp.FillNone:
	default:
		return fmt.Errorf("invalid fill-policy %q (use off, currentColor or none)", o.FillPolicy)
	}
	switch c.ExportType {
	case svgcomp.ExportNamed, svgcomp.ExportDefault:
	default:
		return fmt.Errorf("invalid export-type %q (use named or default)", c.ExportType)
	}
	return nil
}

// genString reads a generate setting: flag key first, then generate.<key>
func genString(key, defaultVal string) string {
	return getStringWithFallback(key, "generate."+key, defaultVal)
}

func genBool(key string, defaultVal bool) bool {
	return getBoolWithFallback(key, "generate."+key, defaultVal)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
