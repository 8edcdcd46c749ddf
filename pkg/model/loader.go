package model

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// LoadFile loads a lap table, dispatching on the file extension.
func LoadFile(path string) ([]Lap, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported lap table format: %s", path)
	}
}

// LoadJSON reads a json array of lap records. A null or missing
// lapTimeSeconds becomes NaN.
func LoadJSON(path string) ([]Lap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	rows, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a json array of lap records", path)
	}
	laps := make([]Lap, 0, len(rows))
	for i, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: record %d is not an object", path, i)
		}
		lap, err := lapFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i, err)
		}
		laps = append(laps, lap)
	}
	return laps, nil
}

func lapFromObject(obj map[string]any) (Lap, error) {
	lap := Lap{LapTimeSeconds: math.NaN()}
	var err error
	if lap.Team, err = stringField(obj, "team"); err != nil {
		return lap, err
	}
	if lap.Driver, err = stringField(obj, "driver"); err != nil {
		return lap, err
	}
	if lap.Day, err = intField(obj, "day"); err != nil {
		return lap, err
	}
	if lap.Stint, err = intField(obj, "stint"); err != nil {
		return lap, err
	}
	if lap.LapNumber, err = intField(obj, "lapNumber"); err != nil {
		return lap, err
	}
	if c, ok := obj["compound"].(string); ok {
		lap.Compound = c
	}
	switch v := obj["lapTimeSeconds"].(type) {
	case nil:
		// missing time stays NaN
	case float64:
		lap.LapTimeSeconds = v
	case int64:
		lap.LapTimeSeconds = float64(v)
	default:
		return lap, fmt.Errorf("lapTimeSeconds has unexpected type %T", v)
	}
	return lap, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key].(string)
	if !ok {
		return "", fmt.Errorf("missing or non-string field %q", key)
	}
	return v, nil
}

func intField(obj map[string]any, key string) (int, error) {
	switch v := obj[key].(type) {
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("missing or non-numeric field %q", key)
	}
}

// LoadCSV reads a lap table with a header row. Columns are matched by
// name (Team, Driver, Day, Stint, LapNumber, Compound, LapTimeSeconds);
// an empty lap time cell becomes NaN.
func LoadCSV(path string) ([]Lap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{
		"Team", "Driver", "Day", "Stint", "LapNumber", "Compound", "LapTimeSeconds",
	} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	laps := make([]Lap, 0, len(records)-1)
	for i, rec := range records[1:] {
		lap := Lap{
			Team:     rec[col["Team"]],
			Driver:   rec[col["Driver"]],
			Compound: rec[col["Compound"]],
		}
		if lap.Day, err = strconv.Atoi(rec[col["Day"]]); err != nil {
			return nil, fmt.Errorf("%s: row %d: day: %w", path, i+2, err)
		}
		if lap.Stint, err = strconv.Atoi(rec[col["Stint"]]); err != nil {
			return nil, fmt.Errorf("%s: row %d: stint: %w", path, i+2, err)
		}
		if lap.LapNumber, err = strconv.Atoi(rec[col["LapNumber"]]); err != nil {
			return nil, fmt.Errorf("%s: row %d: lapNumber: %w", path, i+2, err)
		}
		raw := strings.TrimSpace(rec[col["LapTimeSeconds"]])
		if raw == "" {
			lap.LapTimeSeconds = math.NaN()
		} else if lap.LapTimeSeconds, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("%s: row %d: lapTimeSeconds: %w", path, i+2, err)
		}
		laps = append(laps, lap)
	}
	return laps, nil
}
