package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/willythepapi/FITART-v1/internal/app"
	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

var (
	exportDir      string
	exportMeals    bool
	exportWorkouts bool
	exportProgress bool
	resetYes       bool
	migrateDryRun  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export meals, workouts and progress as JSON and CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportDir == "" {
			return fmt.Errorf("--dir is required")
		}
		opts := usecase.ExportOptions{Meals: exportMeals, Workouts: exportWorkouts, Progress: exportProgress}
		if !opts.Meals && !opts.Workouts && !opts.Progress {
			opts = usecase.ExportOptions{Meals: true, Workouts: true, Progress: true}
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			files, err := a.UseCases.ExportUserData.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(exportDir, 0o755); err != nil {
				return fmt.Errorf("create export dir: %w", err)
			}
			for _, f := range files {
				path := filepath.Join(exportDir, f.Filename)
				if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", f.Filename, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data and restore the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to erase all data without --yes")
		}
		return withApp(cmd.Context(), func(a *app.App) error {
			if err := a.UseCases.ClearAllData.Execute(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data erased")
			return nil
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade the stored database to the current schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kv, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		pending, err := database.MigrateStored(cmd.Context(), kv, cfg.StorageKey, migrateDryRun)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(pending) == 0 {
			fmt.Fprintf(out, "Schema is up to date (version %d)\n", database.CurrentSchemaVersion)
			return nil
		}
		verb := "Applied"
		if migrateDryRun {
			verb = "Pending"
		}
		for _, m := range pending {
			fmt.Fprintf(out, "%s %d %s\n", verb, m.Version, m.Name)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory to write the files to")
	exportCmd.Flags().BoolVar(&exportMeals, "meals", false, "Export meals")
	exportCmd.Flags().BoolVar(&exportWorkouts, "workouts", false, "Export workouts")
	exportCmd.Flags().BoolVar(&exportProgress, "progress", false, "Export daily progress")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm erasing all data")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "List pending migrations without applying them")
	rootCmd.AddCommand(exportCmd, resetCmd, migrateCmd)
}
