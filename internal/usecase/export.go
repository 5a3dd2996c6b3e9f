package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/willythepapi/FITART-v1/internal/repository"
)

// Export MIME types.
const (
	MimeJSON = "application/json"
	MimeCSV  = "text/csv"
)

// progressEpoch is the first date included in progress exports.
const progressEpoch = "1970-01-01"

// ExportOptions selects the data sets to export.
type ExportOptions struct {
	Meals    bool `json:"meals"`
	Workouts bool `json:"workouts"`
	Progress bool `json:"progress"`
}

// ExportFile is one generated file.
type ExportFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}

// ExportUserDataUseCase renders the selected data as JSON and CSV files.
type ExportUserDataUseCase struct {
	workouts  repository.IWorkoutRepository
	nutrition repository.INutritionRepository
	progress  repository.IProgressRepository
	clock     clock
}

func (uc *ExportUserDataUseCase) Execute(ctx context.Context, opts ExportOptions) ([]ExportFile, error) {
	files := []ExportFile{}

	if opts.Meals {
		meals, err := uc.nutrition.GetMeals(ctx)
		if err != nil {
			return nil, err
		}
		file, err := jsonFile("meals.json", meals)
		if err != nil {
			return nil, err
		}

		rows := [][]string{{"id", "name", "calories", "protein", "carbs", "fat", "timestamp"}}
		for _, m := range meals {
			rows = append(rows, []string{
				m.ID, m.Name, formatNumber(m.Calories), formatNumber(m.Protein),
				formatNumber(m.Carbs), formatNumber(m.Fat), strconv.FormatInt(m.Timestamp, 10),
			})
		}
		files = append(files, file, csvFile("meals.csv", rows))
	}

	if opts.Workouts {
		workouts, err := uc.workouts.GetWorkouts(ctx)
		if err != nil {
			return nil, err
		}
		file, err := jsonFile("workouts.json", workouts)
		if err != nil {
			return nil, err
		}

		rows := [][]string{{"workout_id", "workout_name", "exercise_name", "sets", "reps", "video_url", "description"}}
		for _, w := range workouts {
			for _, ex := range w.Exercises {
				rows = append(rows, []string{
					w.ID, w.Name, ex.Name, strconv.Itoa(ex.Sets), ex.Reps, ex.VideoURL, ex.Description,
				})
			}
		}
		files = append(files, file, csvFile("workouts.csv", rows))
	}

	if opts.Progress {
		history, err := uc.progress.GetProgressHistory(ctx, progressEpoch, uc.clock.today())
		if err != nil {
			return nil, err
		}
		file, err := jsonFile("progress.json", history)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func jsonFile(name string, v any) (ExportFile, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ExportFile{}, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return ExportFile{Filename: name, Content: string(data), MimeType: MimeJSON}, nil
}

// csvFile joins rows with "\n" and no trailing newline.
func csvFile(name string, rows [][]string) ExportFile {
	lines := make([]string, len(rows))
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, f := range row {
			fields[j] = EscapeCSVField(f)
		}
		lines[i] = strings.Join(fields, ",")
	}
	return ExportFile{Filename: name, Content: strings.Join(lines, "\n"), MimeType: MimeCSV}
}

// EscapeCSVField quotes s when it contains a comma, quote, CR or LF and
// doubles embedded quotes. Other values are returned unchanged.
func EscapeCSVField(s string) string {
	if !strings.ContainsAny(s, "\",\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
