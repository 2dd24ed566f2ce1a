package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/aus-world/internal/options"
	"github.com/KirkDiggler/aus-world/internal/orchestrators/generation"
	"github.com/KirkDiggler/aus-world/internal/pkg/idgen"
)

var (
	generateSeedName  string
	generateOutputDir string
	generateRedis     string
)

var generateCmd = &cobra.Command{
	Use:   "generate [player.yaml...]",
	Short: "Generate slots for one or more players",
	Long: `Run item, region and rule creation for every player file in slot order, pad
each player's items with filler, store the slot data and write one compressed
slot file per player.

  generate players/egg.yaml players/bird.yaml --output out/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSeedName, "seed-name", "", "seed name (random when empty)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output", "output", "directory for slot files")
	generateCmd.Flags().StringVar(&generateRedis, "redis", "", "comma separated redis endpoints to store slot data in")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	players, err := loadPlayers(args)
	if err != nil {
		return err
	}

	repo, closeRepo, err := newSlotDataRepo(generateRedis, 0)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := generation.NewOrchestrator(&generation.Config{
		SlotDataRepo: repo,
		IDGenerator:  idgen.NewUUID("AUS"),
		OutputDir:    generateOutputDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	out, err := svc.Generate(context.Background(), &generation.GenerateInput{
		Players:  players,
		SeedName: generateSeedName,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seed %s\n\n", out.SeedName)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tPLAYER\tLOCATIONS\tITEMS\tFILLER\tFILE")
	for _, slot := range out.Slots {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			slot.Player, slot.PlayerName, slot.Locations, slot.Items, slot.FillerAdded, slot.OutputPath)
	}
	return tw.Flush()
}

func loadPlayers(paths []string) ([]*options.Player, error) {
	players := make([]*options.Player, 0, len(paths))
	for _, path := range paths {
		p, err := options.LoadPlayer(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load player file: %w", err)
		}
		players = append(players, p)
	}
	return players, nil
}

