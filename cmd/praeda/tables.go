package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edover/praeda-go/internal/config"
	"github.com/edover/praeda-go/internal/engine"
	lootent "github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/orchestrators/loot"
	"github.com/edover/praeda-go/internal/pkg/random"
	"github.com/edover/praeda-go/internal/redis"
	loottable "github.com/edover/praeda-go/internal/repositories/loot_table"
)

var (
	redisAddr string

	tablePushName string
	tablePushID   string

	tableRollItems int
	tableRollSeed  uint64
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage stored loot tables",
	Long:  `Store, list, inspect and delete loot tables in Redis.`,
}

var tablesPushCmd = &cobra.Command{
	Use:   "push <config.toml>",
	Short: "Store a taxonomy config as a loot table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesPush,
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored loot tables",
	RunE:  runTablesList,
}

var tablesShowCmd = &cobra.Command{
	Use:   "show <table-id>",
	Short: "Print a stored loot table as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesShow,
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete <table-id>",
	Short: "Delete a stored loot table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesDelete,
}

var tablesRollCmd = &cobra.Command{
	Use:   "roll <table-id>",
	Short: "Generate loot from a stored table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesRoll,
}

func init() {
	tablesCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address")

	tablesPushCmd.Flags().StringVar(&tablePushName, "name", "", "table name (defaults to the config file name)")
	tablesPushCmd.Flags().StringVar(&tablePushID, "id", "", "replace the table with this ID instead of creating one")

	tablesRollCmd.Flags().IntVarP(&tableRollItems, "items", "n", 1, "number of items to generate")
	tablesRollCmd.Flags().Uint64Var(&tableRollSeed, "seed", 0, "random seed; 0 seeds from the current time")

	tablesCmd.AddCommand(tablesPushCmd)
	tablesCmd.AddCommand(tablesListCmd)
	tablesCmd.AddCommand(tablesShowCmd)
	tablesCmd.AddCommand(tablesDeleteCmd)
	tablesCmd.AddCommand(tablesRollCmd)
}

// newLootService wires a Redis-backed loot service for the tables commands.
func newLootService(cmd *cobra.Command) (loot.Service, error) {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	if err := redis.Ping(cmd.Context(), client); err != nil {
		return nil, err
	}

	repo, err := loottable.NewRedis(&loottable.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	src := random.NewFromTime()
	if tableRollSeed != 0 {
		src = random.New(tableRollSeed)
	}
	gen, err := engine.New(&engine.Config{Random: src})
	if err != nil {
		return nil, err
	}

	return loot.NewOrchestrator(&loot.Config{
		TableRepo: repo,
		Engine:    gen,
	})
}

func runTablesPush(cmd *cobra.Command, args []string) error {
	store, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}

	name := tablePushName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	service, err := newLootService(cmd)
	if err != nil {
		return err
	}

	output, err := service.SaveTable(cmd.Context(), &loot.SaveTableInput{
		TableID:  tablePushID,
		Name:     name,
		Document: store.Snapshot(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "stored %q as %s\n", output.Table.Name, output.Table.ID)
	return nil
}

func runTablesList(cmd *cobra.Command, _ []string) error {
	service, err := newLootService(cmd)
	if err != nil {
		return err
	}

	output, err := service.ListTables(cmd.Context(), &loot.ListTablesInput{})
	if err != nil {
		return err
	}

	if len(output.Tables) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no tables stored")
		return nil
	}
	for _, table := range output.Tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(updated %s)\n",
			table.ID, table.Name, table.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runTablesShow(cmd *cobra.Command, args []string) error {
	service, err := newLootService(cmd)
	if err != nil {
		return err
	}

	output, err := service.GetTable(cmd.Context(), &loot.GetTableInput{TableID: args[0]})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(output.Table, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func runTablesDelete(cmd *cobra.Command, args []string) error {
	service, err := newLootService(cmd)
	if err != nil {
		return err
	}

	if _, err := service.DeleteTable(cmd.Context(), &loot.DeleteTableInput{TableID: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func runTablesRoll(cmd *cobra.Command, args []string) error {
	service, err := newLootService(cmd)
	if err != nil {
		return err
	}

	opts := lootent.DefaultOptions()
	opts.NumberOfItems = tableRollItems
	output, err := service.Generate(cmd.Context(), &loot.GenerateInput{
		TableID: args[0],
		Options: opts,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(output.Items, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
