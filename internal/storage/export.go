// ABOUTME: Export and import functionality for fitlog data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any Store.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the versioned envelope for full-data exports.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Activities []*models.Activity `json:"activities" yaml:"activities"`
	Goals      []*models.Goal     `json:"goals" yaml:"goals"`
}

// BuildExport collects everything in the store into an export envelope.
// Activities are ordered most recent first, goals by creation time.
func BuildExport(s Store) (*ExportData, error) {
	activities, err := s.LoadAllActivities()
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	goals, err := s.LoadAllGoals()
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		Activities: activities,
		Goals:      goals,
	}, nil
}

// ExportJSON exports all data as indented JSON.
func ExportJSON(s Store) ([]byte, error) {
	data, err := BuildExport(s)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with activities grouped by type.
func ExportYAML(s Store) ([]byte, error) {
	data, err := BuildExport(s)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		Activities map[string][]yamlActivity `yaml:"activities"`
		Goals      []yamlGoal                `yaml:"goals"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Activities: make(map[string][]yamlActivity),
		Goals:      make([]yamlGoal, 0, len(data.Goals)),
	}

	for _, a := range data.Activities {
		at := string(a.Type)
		yamlData.Activities[at] = append(yamlData.Activities[at], yamlActivity{
			ID:       shortID(a.ID),
			Date:     a.Date.Format(time.RFC3339),
			Duration: a.Duration,
			Distance: a.Distance,
			Calories: a.Calories,
		})
	}

	for _, g := range data.Goals {
		yamlData.Goals = append(yamlData.Goals, yamlGoal{
			ID:           shortID(g.ID),
			Name:         g.Name,
			TargetMetric: string(g.TargetMetric),
			TargetValue:  g.TargetValue,
			Deadline:     g.Deadline.Format(time.RFC3339),
			CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlActivity struct {
	ID       string  `yaml:"id"`
	Date     string  `yaml:"date"`
	Duration float64 `yaml:"duration"`
	Distance float64 `yaml:"distance"`
	Calories float64 `yaml:"calories"`
}

type yamlGoal struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	TargetMetric string  `yaml:"target_metric"`
	TargetValue  float64 `yaml:"target_value"`
	Deadline     string  `yaml:"deadline"`
	CreatedAt    string  `yaml:"created_at"`
}

// ExportMarkdown renders activities (optionally one type, optionally
// since a date) and goals as a Markdown report.
func ExportMarkdown(s Store, activityType *models.ActivityType, since *time.Time) (string, error) {
	data, err := BuildExport(s)
	if err != nil {
		return "", err
	}

	activities := data.Activities
	if activityType != nil {
		var filtered []*models.Activity
		for _, a := range activities {
			if a.Type == *activityType {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}
	if since != nil {
		var filtered []*models.Activity
		for _, a := range activities {
			if a.Date.After(*since) || a.Date.Equal(*since) {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Fitlog Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if activityType != nil {
		writeActivityTable(&sb, string(*activityType), activities)
	} else {
		grouped := make(map[models.ActivityType][]*models.Activity)
		for _, a := range activities {
			grouped[a.Type] = append(grouped[a.Type], a)
		}

		var types []models.ActivityType
		for t := range grouped {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool {
			return string(types[i]) < string(types[j])
		})

		for _, t := range types {
			writeActivityTable(&sb, string(t), grouped[t])
		}
	}

	if activityType == nil && len(data.Goals) > 0 {
		sb.WriteString("## Goals\n\n")
		sb.WriteString("| Name | Metric | Target | Deadline |\n")
		sb.WriteString("|------|--------|--------|----------|\n")
		for _, g := range data.Goals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s |\n",
				g.Name, g.TargetMetric, g.TargetValue,
				g.Deadline.Format("2006-01-02")))
		}
	}

	return sb.String(), nil
}

func writeActivityTable(sb *strings.Builder, heading string, activities []*models.Activity) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", heading))
	sb.WriteString("| Date | Duration | Distance | Calories |\n")
	sb.WriteString("|------|----------|----------|----------|\n")
	for _, a := range activities {
		sb.WriteString(fmt.Sprintf("| %s | %.0f min | %.2f km | %.0f kcal |\n",
			a.Date.Format("2006-01-02 15:04"),
			a.Duration, a.Distance, a.Calories))
	}
	sb.WriteString("\n")
}

// ImportSummary holds counts of imported entities.
type ImportSummary struct {
	Activities int
	Goals      int
}

// ImportData saves every record from an export envelope into the store.
// Existing records with the same id are overwritten.
func ImportData(s Store, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}
	for _, a := range data.Activities {
		if err := s.SaveActivity(a); err != nil {
			return nil, fmt.Errorf("import activity %s: %w", a.ID, err)
		}
		summary.Activities++
	}
	for _, g := range data.Goals {
		if err := s.SaveGoal(g); err != nil {
			return nil, fmt.Errorf("import goal %s: %w", g.ID, err)
		}
		summary.Goals++
	}
	return summary, nil
}

// ImportJSON imports data from JSON bytes produced by ExportJSON.
func ImportJSON(s Store, data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(s, &exportData)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
