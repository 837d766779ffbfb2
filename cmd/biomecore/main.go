// Command biomecore is the CLI dispatcher boundary collaborator spec.md
// §1 carves out of scope: it parses flags, loads an optional config file,
// and prints results, but implements no generation logic of its own.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/StoreStation/biomecore/pkg/world"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("biomecore failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "biomecore",
		Short: "query and search bit-for-bit reproduced world generation",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML generator config file")

	root.AddCommand(newBiomeCmd(&configPath))
	root.AddCommand(newFindQuadCmd(&configPath))
	root.AddCommand(newFindAllCmd(&configPath))
	return root
}

func loadConfig(configPath string) (world.GeneratorConfig, error) {
	if configPath == "" {
		return world.DefaultGeneratorConfig(), nil
	}
	return world.LoadGeneratorConfig(configPath)
}

func newBiomeCmd(configPath *string) *cobra.Command {
	var x, z, y, scale int32
	var seed int64

	cmd := &cobra.Command{
		Use:   "biome",
		Short: "look up the biome at a single world position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Seed = seed
			}
			gen, dim, err := cfg.Build()
			if err != nil {
				return err
			}
			id, err := gen.GetBiomeAt(dim, scale, x, y, z)
			if err != nil {
				return err
			}
			fingerprint := world.Fingerprint([]world.BiomeID{id})
			b := world.Lookup(id)
			name := "unknown"
			if b != nil {
				name = b.Name
			}
			log.WithFields(logrus.Fields{
				"seed":        cfg.Seed,
				"scale":       scale,
				"x":           x, "y": y, "z": z,
				"fingerprint": fingerprint,
			}).Infof("biome: %s (%d)", name, id)
			fmt.Println(name)
			return nil
		},
	}
	cmd.Flags().Int32Var(&x, "x", 0, "world x coordinate")
	cmd.Flags().Int32Var(&z, "z", 0, "world z coordinate")
	cmd.Flags().Int32Var(&y, "y", 64, "world y coordinate")
	cmd.Flags().Int32Var(&scale, "scale", 1, "horizontal scale (1,4,16,64,256)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "world seed override")
	return cmd
}

func newFindQuadCmd(configPath *string) *cobra.Command {
	var startSeed int64
	var regionRadius int32
	var quality int32
	var structure string

	cmd := &cobra.Command{
		Use:   "findquad",
		Short: "search for a quad-structure base seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithFields(logrus.Fields{
				"start_seed": startSeed, "region_radius": regionRadius, "quality": quality,
				"structure": structure,
			}).Info("searching for quad candidates")

			var found []int64
			var err error
			switch structure {
			case "swamp-hut":
				found, err = world.FindQuadCandidate(context.Background(), startSeed, regionRadius, quality)
			case "monument":
				found, err = world.FindMonumentQuadCandidate(context.Background(), startSeed, regionRadius, quality)
			default:
				return fmt.Errorf("unknown --structure %q (want swamp-hut or monument)", structure)
			}
			if err != nil {
				return err
			}
			if len(found) == 0 {
				log.Info("no candidates found")
				return nil
			}
			for _, seed := range found {
				fmt.Println(seed)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&startSeed, "start", 0, "starting seed")
	cmd.Flags().Int32Var(&regionRadius, "region-radius", 1, "region search radius")
	cmd.Flags().Int32Var(&quality, "quality", 2, "quality band (0=loosest)")
	cmd.Flags().StringVar(&structure, "structure", "swamp-hut", "target structure: swamp-hut or monument")
	return cmd
}

func newFindAllCmd(configPath *string) *cobra.Command {
	var startSeed, endSeed int64
	var version string

	cmd := &cobra.Command{
		Use:   "findall",
		Short: "search for a seed containing every major biome near spawn",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := versionFromName(version)
			if !ok {
				return fmt.Errorf("unknown version %q", version)
			}
			area := world.Range{X: -4, Z: -4, SX: 8, SZ: 8}
			log.WithFields(logrus.Fields{"start": startSeed, "end": endSeed}).Info("searching all-biomes seeds")
			seed, ok, err := world.FindAllBiomesSeed(context.Background(), startSeed, endSeed, v, area)
			if err != nil {
				return err
			}
			if !ok {
				log.Info("no qualifying seed found in range")
				return nil
			}
			fmt.Println(seed)
			return nil
		},
	}
	cmd.Flags().Int64Var(&startSeed, "start", 0, "range start (inclusive)")
	cmd.Flags().Int64Var(&endSeed, "end", 1_000_000, "range end (exclusive)")
	cmd.Flags().StringVar(&version, "version", "1.12", "generator version")
	return cmd
}

func versionFromName(name string) (world.Version, bool) {
	switch name {
	case "1.7":
		return world.V1_7, true
	case "1.9":
		return world.V1_9, true
	case "1.12":
		return world.V1_12, true
	case "1.13":
		return world.V1_13, true
	case "1.15":
		return world.V1_15, true
	case "1.16":
		return world.V1_16, true
	default:
		return 0, false
	}
}
