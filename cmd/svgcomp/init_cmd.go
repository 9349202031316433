package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .svgcomp.yaml config file",
	Long:  `Create a .svgcomp.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# svgcomp configuration
# Precedence: flags > SVGCOMP_* environment variables > this file > defaults
# Example: SVGCOMP_GENERATE_OUT_DIR=src/icons overrides generate.out-dir

# Shared settings
verbose: false
quiet: false
color: false

# Generation settings
generate:
  input:
    - icons
  out-dir: src/components/icons
  recursive: true
  output-format: text      # text | summary | json
  concurrency: 0           # 0 = number of CPUs

  # Components
  framework: react         # react | vue
  typescript: false
  prefix: ""
  suffix: ""
  memo: false              # react
  ref: false               # react
  named-export: true       # react
  composition-api: false   # vue
  script-setup: false      # vue, requires composition-api
  native-props: true
  index: true
  export-type: named       # named | default

  # Transformation
  dimensions: size         # keep | remove | size
  split-colors: true
  split-special-colors: false
  split-stroke-widths: false
  fixed-stroke-width: false
  fill-policy: "off"       # off | currentColor | none
  a11y: true
  id-prefix: svg
  remove-comments: true
  remove-duplicates: true
  remove-editor-data: true

  # Optimization
  optimize: true
  remove-viewbox: false
  precision: 0             # 0 = keep all digits
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
