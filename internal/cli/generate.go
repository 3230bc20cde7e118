package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aguscruiz/color-palette-generator/internal/colour"
	"github.com/aguscruiz/color-palette-generator/internal/config"
	"github.com/aguscruiz/color-palette-generator/internal/export"
)

var (
	// Generate command flags
	generateFamilies  []string
	generateSteps     int
	generateChroma    float64
	generateReference string
	generateFormat    string
	generateOut       string
	generateNoColour  bool
	generateTargets   = newTargetsValue()
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate colour scales from the configured families",
	Long: `Generate expands each colour family into an ordered scale of colour steps.

Lightness descends from near-white to near-black at the family's hue and
the shared chroma. Steps pinned with --target (or targets saved in the
config) are solved to the requested WCAG contrast ratio against the
reference colour instead of following the default curve.

Examples:
  # All families as a terminal table
  color-palette-generator generate

  # One family, 18 steps, with two pinned contrast ratios
  color-palette-generator generate --family blues --steps 18 \
    --target 4=3.0 --target 9=4.5

  # Write CSS variables and a Tailwind config
  color-palette-generator generate --format css --out ./theme
  color-palette-generator generate --format tailwind --out ./theme

  # Contrast measured against a dark reference
  color-palette-generator generate --reference '#111111'`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVarP(&generateFamilies, "family", "f", nil, "families to generate (ID or name, default: all)")
	generateCmd.Flags().IntVarP(&generateSteps, "steps", "s", 0, "steps per scale (minimum 3)")
	generateCmd.Flags().Float64VarP(&generateChroma, "chroma", "c", 0, "shared chroma in [0, 0.4]")
	generateCmd.Flags().StringVarP(&generateReference, "reference", "r", "", "reference colour for contrast (hex)")
	generateCmd.Flags().StringVar(&generateFormat, "format", string(export.FormatTable), "output format (table, css, tailwind, json)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "directory to write output files (default: stdout)")
	generateCmd.Flags().BoolVar(&generateNoColour, "no-colour", false, "disable ANSI colour swatches")
	generateCmd.Flags().Var(generateTargets, "target", "pin a step to a WCAG contrast ratio (repeatable, e.g. --target 2=4.5)")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	format := export.Format(generateFormat)
	if !export.IsValidFormat(format) {
		return fmt.Errorf("unknown format: %s (valid formats: %v)", generateFormat, export.ValidFormats())
	}

	if generateNoColour {
		colour.DisableColourOutput = true
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	applyOverrides(cmd, &cfg)
	cfg.Normalise()

	families, err := selectFamilies(cfg)
	if err != nil {
		return err
	}

	results := make([]export.ScaleResult, 0, len(families))
	for _, family := range families {
		steps, err := colour.GenerateScale(colour.ScaleRequest{
			FamilyID:      family.ID,
			BaseLightness: family.Lightness,
			Hue:           family.Hue,
			Chroma:        cfg.Chroma,
			Steps:         cfg.Steps,
			Targets:       cfg.Targets,
			Reference:     cfg.Reference,
		})
		if err != nil {
			return fmt.Errorf("failed to generate scale for %s: %w", family.Name, err)
		}

		for _, step := range steps {
			if step.ContrastForced && step.Residual >= colour.DefaultSolverTolerance {
				log.Warn("contrast target not reachable",
					"family", family.Name,
					"step", step.Name,
					"target", step.Target,
					"achieved", step.Contrast)
			}
		}

		log.Debug("generated scale", "family", family.Name, "steps", len(steps))
		results = append(results, export.ScaleResult{Family: family, Steps: steps})
	}

	switch format {
	case export.FormatTable:
		printScaleTables(results)
		return nil
	case export.FormatCSS:
		data, err := export.CSS(results)
		if err != nil {
			return err
		}
		return emit(data, format)
	case export.FormatTailwind:
		data, err := export.Tailwind(results)
		if err != nil {
			return err
		}
		return emit(data, format)
	case export.FormatJSON:
		data, err := export.JSON(cfg, results)
		if err != nil {
			return err
		}
		return emit(data, format)
	}
	return nil
}

// applyOverrides overlays flags the user set on top of the loaded config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("steps") {
		cfg.Steps = generateSteps
	}
	if cmd.Flags().Changed("chroma") {
		cfg.Chroma = generateChroma
	}
	if cmd.Flags().Changed("reference") {
		cfg.Reference = generateReference
	}
	if flagTargets := generateTargets.Map(); len(flagTargets) > 0 {
		if cfg.Targets == nil {
			cfg.Targets = make(map[int]float64, len(flagTargets))
		}
		for idx, ratio := range flagTargets {
			cfg.Targets[idx] = ratio
		}
	}
}

// selectFamilies resolves the --family selection against the config,
// defaulting to all configured families.
func selectFamilies(cfg config.Config) ([]config.Family, error) {
	if len(cfg.Families) == 0 {
		return nil, fmt.Errorf("no colour families configured (add one with 'family add')")
	}

	if len(generateFamilies) == 0 {
		return cfg.Families, nil
	}

	selected := make([]config.Family, 0, len(generateFamilies))
	for _, idOrName := range generateFamilies {
		family, ok := cfg.FindFamily(idOrName)
		if !ok {
			names := make([]string, 0, len(cfg.Families))
			for _, f := range cfg.Families {
				names = append(names, f.Name)
			}
			return nil, fmt.Errorf("unknown family: %s (available: %s)", idOrName, strings.Join(names, ", "))
		}
		selected = append(selected, *family)
	}
	return selected, nil
}

// printScaleTables renders each scale as a terminal table with swatches.
func printScaleTables(results []export.ScaleResult) {
	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (hue %.1f)\n", result.Family.Name, result.Family.Hue)

		table := NewTable("STEP", "HEX", "OKLCH", "CONTRAST", "TARGET", "")
		for _, step := range result.Steps {
			target := "-"
			marker := ""
			if step.ContrastForced {
				target = fmt.Sprintf("%.2f", step.Target)
				marker = "*"
				if step.Residual >= colour.DefaultSolverTolerance {
					marker = "!"
				}
			}
			swatch := colour.Swatch(colour.OKLCH{L: step.Lightness, C: step.Chroma, H: step.Hue}, 8)
			table.AddRow(
				step.Name,
				step.Hex,
				step.CSS,
				fmt.Sprintf("%.2f:1%s", step.Contrast, marker),
				target,
				swatch,
			)
		}
		fmt.Print(table.Render())
	}
}

// emit writes rendered output to --out or stdout.
func emit(data []byte, format export.Format) error {
	if generateOut == "" {
		fmt.Print(string(data))
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	path := filepath.Join(generateOut, export.Filename(format))
	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	return nil
}

// writeFile writes content to a file, creating directories as needed and
// keeping a backup of any file it replaces.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			log.Warn("could not create backup", "path", backupPath, "error", err)
		} else {
			log.Debug("created backup", "path", backupPath)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
