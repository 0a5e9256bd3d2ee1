package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"termcraft/internal/config"
	"termcraft/internal/world"
)

var flagGenOut string

var genCmd = &cobra.Command{
	Use:   "gen <world>",
	Short: "Generate a map and print it to stdout",
	Long: `Generate a world map without starting a game.

Prints an ASCII rendition of the terrain; with --out, also writes the
world as a JSON save that 'play' can load.

Examples:
  termcraft gen craft --seed 42
  termcraft gen farm --seed 7 --out farm_save.json`,
	Args: cobra.ExactArgs(1),
	Run:  runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagGenOut, "out", "", "Write the generated world to a JSON save file")
}

// genChar maps a block to a plain ASCII character for stdout output.
func genChar(b world.BlockType) byte {
	switch b {
	case world.Grass:
		return '^'
	case world.Dirt:
		return ':'
	case world.Stone:
		return '#'
	case world.Wood:
		return '|'
	case world.Leaves:
		return '*'
	case world.Tilled:
		return '='
	default:
		return ' '
	}
}

func runGen(cmd *cobra.Command, args []string) {
	gameID := args[0]

	var wc config.WorldConfig
	switch gameID {
	case "craft":
		cfg, err := config.LoadCraft("")
		if err != nil {
			cfg = config.DefaultCraftConfig()
		}
		wc = cfg.World
	case "farm":
		cfg, err := config.LoadFarm("")
		if err != nil {
			cfg = config.DefaultFarmConfig()
		}
		wc = cfg.World
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termcraft list' to see available worlds.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := world.NewGenerator(seed, world.GenParams{
		Surface:     wc.Surface,
		Amplitude:   wc.Amplitude,
		DirtDepth:   wc.DirtDepth,
		TreeDensity: wc.TreeDensity,
		NoiseScale:  wc.NoiseScale,
	})
	w := gen.Generate(wc.Width, wc.Height)

	var sb strings.Builder
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			sb.WriteByte(genChar(w.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	fmt.Printf("seed: %d  size: %dx%d  blocks: %d\n", seed, w.Width(), w.Height(), w.Count())

	if flagGenOut != "" {
		if err := w.SaveFile(flagGenOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing save: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", flagGenOut)
	}
}
