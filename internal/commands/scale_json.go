package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// jsonFloat returns v unchanged when JSON can encode it, and its strconv
// spelling ("NaN", "+Inf", "-Inf") otherwise.
func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// parseJSONFloat reads a number written by jsonFloat. An empty value is 0.
func parseJSONFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse number %q: %w", s, err)
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func (r ScaleResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Input  any `json:"input"`
		Output any `json:"output"`
	}{
		Input:  jsonFloat(r.Input),
		Output: jsonFloat(r.Output),
	})
}

func (r *ScaleResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Input  json.RawMessage `json:"input"`
		Output json.RawMessage `json:"output"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if r.Input, err = parseJSONFloat(raw.Input); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if r.Output, err = parseJSONFloat(raw.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (r ScaleReport) MarshalJSON() ([]byte, error) {
	type report ScaleReport
	return json.Marshal(struct {
		report
		Factor any `json:"factor"`
	}{
		report: report(r),
		Factor: jsonFloat(r.Factor),
	})
}

func (r *ScaleReport) UnmarshalJSON(data []byte) error {
	type report ScaleReport
	aux := struct {
		*report
		Factor json.RawMessage `json:"factor"`
	}{
		report: (*report)(r),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	factor, err := parseJSONFloat(aux.Factor)
	if err != nil {
		return fmt.Errorf("factor: %w", err)
	}
	r.Factor = factor
	return nil
}
