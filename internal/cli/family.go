package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguscruiz/color-palette-generator/internal/colour"
	"github.com/aguscruiz/color-palette-generator/internal/config"
	imageutil "github.com/aguscruiz/color-palette-generator/internal/image"
)

var (
	// family add flags
	familyAddHex       string
	familyAddLightness float64
	familyAddHue       float64
	familyAddImage     string
	familyAddClusters  int

	// family set flags
	familySetHex       string
	familySetLightness float64
	familySetHue       float64
	familySetName      string
)

// familyCmd groups the family management subcommands.
var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Manage colour families",
	Long: `A colour family is a base colour a scale is generated from. Only its
lightness and hue are stored; chroma is shared across all families.`,
}

var familyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a colour family",
	Long: `Add a colour family. The base colour comes from --hex, from the dominant
colour of an image via --from-image, or from explicit --lightness/--hue.

Examples:
  color-palette-generator family add blues --hex '#3366cc'
  color-palette-generator family add sunset --from-image wallpaper.jpg
  color-palette-generator family add greens --lightness 0.7 --hue 145`,
	Args: cobra.ExactArgs(1),
	RunE: runFamilyAdd,
}

var familyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List colour families",
	RunE:  runFamilyList,
}

var familyRemoveCmd = &cobra.Command{
	Use:   "remove <id|name>",
	Short: "Remove a colour family",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilyRemove,
}

var familySetCmd = &cobra.Command{
	Use:   "set <id|name>",
	Short: "Update a colour family",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilySet,
}

func init() {
	familyAddCmd.Flags().StringVar(&familyAddHex, "hex", "", "base colour as a hex string")
	familyAddCmd.Flags().Float64Var(&familyAddLightness, "lightness", 0.6, "base lightness in [0, 1]")
	familyAddCmd.Flags().Float64Var(&familyAddHue, "hue", 250, "base hue in degrees [0, 360)")
	familyAddCmd.Flags().StringVar(&familyAddImage, "from-image", "", "seed the base colour from an image's dominant colour")
	familyAddCmd.Flags().IntVar(&familyAddClusters, "clusters", 5, "clusters used for dominant colour extraction")

	familySetCmd.Flags().StringVar(&familySetHex, "hex", "", "base colour as a hex string")
	familySetCmd.Flags().Float64Var(&familySetLightness, "lightness", 0, "base lightness in [0, 1]")
	familySetCmd.Flags().Float64Var(&familySetHue, "hue", 0, "base hue in degrees [0, 360)")
	familySetCmd.Flags().StringVar(&familySetName, "name", "", "rename the family")

	familyCmd.AddCommand(familyAddCmd)
	familyCmd.AddCommand(familyListCmd)
	familyCmd.AddCommand(familyRemoveCmd)
	familyCmd.AddCommand(familySetCmd)
}

// runFamilyAdd executes the family add command.
func runFamilyAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if _, exists := cfg.FindFamily(name); exists {
		return fmt.Errorf("a family named %q already exists", name)
	}

	family := config.NewFamily(name, familyAddLightness, familyAddHue)

	switch {
	case familyAddImage != "":
		img, err := imageutil.Load(familyAddImage)
		if err != nil {
			return err
		}
		seed, err := colour.DominantOklch(img, familyAddClusters)
		if err != nil {
			return fmt.Errorf("failed to extract dominant colour: %w", err)
		}
		family.Lightness = seed.L
		family.Hue = seed.H
		log.Debug("seeded family from image", "path", familyAddImage, "colour", seed.Hex())
	case familyAddHex != "":
		if !family.SetHex(familyAddHex) {
			return fmt.Errorf("invalid hex colour: %s", familyAddHex)
		}
	}

	cfg.Families = append(cfg.Families, family)
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	base := family.Base(cfg.Chroma)
	fmt.Printf("added %s %s %s (%s)\n", colour.Swatch(base, 4), family.Name, base.Hex(), family.ID)
	return nil
}

// runFamilyList executes the family list command.
func runFamilyList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Families) == 0 {
		fmt.Println("no colour families configured")
		return nil
	}

	table := NewTable("ID", "NAME", "BASE", "L", "H", "")
	for _, family := range cfg.Families {
		base := family.Base(cfg.Chroma)
		table.AddRow(
			shortID(family.ID),
			family.Name,
			base.Hex(),
			fmt.Sprintf("%.3f", family.Lightness),
			fmt.Sprintf("%.1f", family.Hue),
			colour.Swatch(base, 8),
		)
	}
	fmt.Print(table.Render())
	return nil
}

// runFamilyRemove executes the family remove command.
func runFamilyRemove(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.RemoveFamily(args[0]) {
		return fmt.Errorf("unknown family: %s", args[0])
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

// runFamilySet executes the family set command.
func runFamilySet(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	family, ok := cfg.FindFamily(args[0])
	if !ok {
		return fmt.Errorf("unknown family: %s", args[0])
	}

	if cmd.Flags().Changed("hex") {
		if !family.SetHex(familySetHex) {
			return fmt.Errorf("invalid hex colour: %s", familySetHex)
		}
	}
	if cmd.Flags().Changed("lightness") {
		family.Lightness = familySetLightness
	}
	if cmd.Flags().Changed("hue") {
		family.Hue = familySetHue
	}
	if cmd.Flags().Changed("name") {
		family.Name = familySetName
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	base := family.Base(cfg.Chroma)
	fmt.Printf("updated %s %s %s\n", colour.Swatch(base, 4), family.Name, base.Hex())
	return nil
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
