package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
)

var slotDataCmd = &cobra.Command{
	Use:   "slot-data [seed-name] [player]",
	Short: "Get one player's slot data",
	Long: `Fetch the slot data stored for a player of a seed. Example:

  slot-data AUS_0b6c... 1`,
	Args: cobra.ExactArgs(2),
	RunE: getSlotData,
}

var listSlotsCmd = &cobra.Command{
	Use:   "slots [seed-name]",
	Short: "List every slot of a seed",
	Args:  cobra.ExactArgs(1),
	RunE:  listSlots,
}

func getSlotData(cmd *cobra.Command, args []string) error {
	player, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("player must be a number: %w", err)
	}

	client, cleanup, err := createSlotDataClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	record, err := client.GetSlotData(ctx, args[0], player)
	if err != nil {
		return fmt.Errorf("failed to get slot data: %w", err)
	}

	printRecord(cmd.OutOrStdout(), record)
	return nil
}

func listSlots(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSlotDataClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	records, err := client.ListSlots(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to list slots: %w", err)
	}

	for i, record := range records {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printRecord(cmd.OutOrStdout(), record)
	}
	return nil
}

func printRecord(w io.Writer, r *slotdata.Record) {
	fmt.Fprintf(w, "Seed:    %s\n", r.SeedName)
	fmt.Fprintf(w, "Player:  %d (%s)\n", r.Player, r.PlayerName)
	fmt.Fprintf(w, "Game:    %s\n", r.Game)
	fmt.Fprintf(w, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))

	keys := make([]string, 0, len(r.Data))
	for k := range r.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-24s %v\n", k, r.Data[k])
	}
}
