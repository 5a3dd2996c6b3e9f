package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willythepapi/FITART-v1/internal/app"
	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

var targetsApply bool

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Look up the built-in food table",
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search foods by name (per 100g values)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		foods := (&usecase.SearchFoodsUseCase{}).Execute(query)
		if len(foods) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", query)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tKCAL\tPROTEIN\tCARBS\tFAT")
		for _, f := range foods {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name,
				num(f.CaloriesPer100g), num(f.Protein), num(f.Carbs), num(f.Fat))
		}
		return w.Flush()
	},
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Calculate daily calorie and water targets from the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			user, err := a.UseCases.GetUserProfile.Execute(cmd.Context())
			if err != nil {
				return err
			}
			targets := a.UseCases.CalculateDailyTargets.Execute(usecase.TargetsFromUser(user))
			out := cmd.OutOrStdout()
			if targets.CalorieGoal == 0 {
				fmt.Fprintln(out, "Profile is missing weight, height, age or activity level")
				return nil
			}
			fmt.Fprintf(out, "Calories: %d kcal\nWater: %d ml\n", targets.CalorieGoal, targets.WaterGoal)

			if !targetsApply {
				return nil
			}
			_, err = a.UseCases.UpdateUserProfile.Execute(cmd.Context(), models.UserPatch{
				CalorieGoal: &targets.CalorieGoal,
				WaterGoal:   &targets.WaterGoal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Saved as profile goals")
			return nil
		})
	},
}

func num(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsApply, "apply", false, "Save the targets as the profile goals")
	foodsCmd.AddCommand(foodsSearchCmd)
	rootCmd.AddCommand(foodsCmd, targetsCmd)
}
