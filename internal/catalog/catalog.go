package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

//go:embed data/schemes.json
var embedded embed.FS

const embeddedPath = "data/schemes.json"

// Catalog is the immutable, validated set of schemes. It is safe to share
// across goroutines.
type Catalog struct {
	schemes []domain.SchemeRecord
	byID    map[string]int
}

// New validates records and builds a catalog over a private copy of them
func New(records []domain.SchemeRecord) (*Catalog, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	c := &Catalog{
		schemes: append([]domain.SchemeRecord(nil), records...),
		byID:    make(map[string]int, len(records)),
	}
	for i, s := range c.schemes {
		c.byID[s.ID] = i
	}
	return c, nil
}

// Default returns the catalog bundled with the binary
func Default() (*Catalog, error) {
	data, err := embedded.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled catalog: %w", err)
	}
	return Parse(data, ".json")
}

// LoadFromFile loads a catalog from a JSON or YAML file chosen by extension
func LoadFromFile(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	c, err := Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return c, nil
}

// Load returns the bundled catalog when filename is empty and the file otherwise
func Load(filename string) (*Catalog, error) {
	if filename == "" {
		return Default()
	}
	return LoadFromFile(filename)
}

// Parse decodes catalog bytes. ext selects YAML for ".yaml" or ".yml"; anything else is JSON.
func Parse(data []byte, ext string) (*Catalog, error) {
	var records []domain.SchemeRecord
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return New(records)
}

// Validate checks the structural invariants every pipeline stage relies on
func Validate(records []domain.SchemeRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]bool, len(records))
	for i, s := range records {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("scheme %d: scheme_id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("scheme %s: duplicate scheme_id", s.ID)
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("scheme %s: scheme_name is required", s.ID)
		}
		if !s.Country.Valid() {
			return fmt.Errorf("scheme %s: unsupported country %q", s.ID, s.Country)
		}
		minAge, hasMin := s.EligibilityAgeMin.Get()
		maxAge, hasMax := s.EligibilityAgeMax.Get()
		if hasMin && hasMax && minAge > maxAge {
			return fmt.Errorf("scheme %s: eligibility_age_min %d exceeds eligibility_age_max %d", s.ID, minAge, maxAge)
		}
	}
	return nil
}

// Schemes returns a copy of every record in catalog order
func (c *Catalog) Schemes() []domain.SchemeRecord {
	return append([]domain.SchemeRecord(nil), c.schemes...)
}

// ByCountry returns the records for one country in catalog order
func (c *Catalog) ByCountry(country domain.Country) []domain.SchemeRecord {
	var out []domain.SchemeRecord
	for _, s := range c.schemes {
		if s.Country == country {
			out = append(out, s)
		}
	}
	return out
}

// Lookup finds a scheme by id
func (c *Catalog) Lookup(id string) (domain.SchemeRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.SchemeRecord{}, false
	}
	return c.schemes[i], true
}

// Len is the number of schemes
func (c *Catalog) Len() int {
	return len(c.schemes)
}
