package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return MarshalJSON(report)
}

// MarshalJSON indents any value the way the report formatter does
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return MarshalYAML(report)
}

// MarshalYAML encodes v with two-space indentation
func MarshalYAML(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVSummarizer implements the summary CSV output (one row per eligible scheme).
type CSVSummarizer struct{}

func (CSVSummarizer) Name() string { return "csv" }

func (CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Rank", "SchemeID", "Scheme", "Country", "RelevanceScore", "EstimateType", "MonthlyPension", "AnnualPension", "Recommendation", "Calculation"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, s := range report.Schemes {
		row := []string{
			strconv.Itoa(i + 1),
			s.Scheme.ID,
			s.Scheme.Name,
			string(s.Scheme.Country),
			strconv.Itoa(s.RelevanceScore),
			string(s.Estimate.Type),
			s.Estimate.MonthlyPension.StringFixed(0),
			s.Estimate.AnnualPension.StringFixed(0),
			s.Recommendation,
			s.Estimate.Calculation,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
