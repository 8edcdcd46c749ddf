package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackColor is used for teams and drivers without a configured color.
const FallbackColor = "#888888"

// TeamColors maps team names to their branding color (hex).
// Entries can be overridden via a yaml file (see LoadTeamColors).
var TeamColors = map[string]string{
	"Red Bull":     "#3671C6",
	"Ferrari":      "#E8002D",
	"Mercedes":     "#27F4D2",
	"McLaren":      "#FF8000",
	"Aston Martin": "#229971",
	"Alpine":       "#0093CC",
	"Williams":     "#64C4FF",
	"RB":           "#6692FF",
	"Sauber":       "#52E252",
	"Haas":         "#B6BABD",
}

// LoadTeamColors merges a yaml file of "team: #rrggbb" entries into TeamColors.
func LoadTeamColors(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	override := map[string]string{}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parse team colors %s: %w", path, err)
	}
	for team, color := range override {
		TeamColors[team] = color
	}
	return nil
}
