package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Format(report *domain.Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *domain.Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{},
	"csv":     CSVSummarizer{},
	"yaml":    YAMLFormatter{},
}

var aliases = map[string]string{
	"text":  "console",
	"table": "console",
	"yml":   "yaml",
}

// GetFormatterByName returns the formatter for a name or alias, or nil
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[key]; ok {
		key = target
	}
	return formatters[key]
}

// AvailableFormatAliases lists every accepted format name, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(formatters)+len(aliases))
	for name := range formatters {
		names = append(names, name)
	}
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders report with f and writes it to a timestamped file in
// the working directory, returning the file name
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("pension_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
