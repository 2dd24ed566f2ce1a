package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/aus-world/internal/options"
)

var templatePlayerName string

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Inspect the player options",
}

var optionsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for the options section of a player file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := options.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return err
	},
}

var optionsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a player YAML file with every option at its default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := options.Template(templatePlayerName)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(doc)
		return err
	},
}

var optionsCheckCmd = &cobra.Command{
	Use:   "check [player.yaml...]",
	Short: "Validate player files and print the resolved options",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := loadPlayers(args)
		if err != nil {
			return err
		}
		for _, p := range players {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.Name)
			for _, v := range p.Options.Values() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %d\n", v.Key, v.Value)
			}
		}
		return nil
	},
}

func init() {
	optionsTemplateCmd.Flags().StringVar(&templatePlayerName, "name", "Player1", "player name written into the template")

	optionsCmd.AddCommand(optionsSchemaCmd)
	optionsCmd.AddCommand(optionsTemplateCmd)
	optionsCmd.AddCommand(optionsCheckCmd)
}
