package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/faultline/pkg/domain/model/config"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// AttributeConfig represents one attribute declaration in a schema file
type AttributeConfig struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Type        string `toml:"type"`
	Required    bool   `toml:"required"`
	Description string `toml:"description"`
}

// SectionConfig represents a nested section declaration
type SectionConfig struct {
	ID        string            `toml:"id"`
	Label     string            `toml:"label"`
	Attribute []AttributeConfig `toml:"attribute"`
	Move      map[string]string `toml:"move"`
}

// SchemaConfig represents the schema file layout
type SchemaConfig struct {
	Attribute []AttributeConfig `toml:"attribute"`
	Section   []SectionConfig   `toml:"section"`
}

// LoadSchema reads, parses and validates a schema file
func LoadSchema(path string) (*domainConfig.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrSchemaNotFound, "failed to load schema",
				goerr.V(PathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read schema file",
			goerr.V(PathKey, path))
	}

	var cfg SchemaConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidSchema, err.Error(),
			goerr.V(PathKey, path))
	}

	schema := cfg.Schema()
	if err := schema.Validate(); err != nil {
		return nil, goerr.Wrap(err, "failed to validate schema",
			goerr.V(PathKey, path))
	}

	return schema, nil
}

// Schema converts the file layout into the domain schema
func (c *SchemaConfig) Schema() *domainConfig.Schema {
	schema := &domainConfig.Schema{
		Attributes: convertAttributes(c.Attribute),
	}
	for _, sec := range c.Section {
		schema.Sections = append(schema.Sections, domainConfig.SectionDefinition{
			ID:         sec.ID,
			Label:      sec.Label,
			Attributes: convertAttributes(sec.Attribute),
			Moves:      sec.Move,
		})
	}
	return schema
}

func convertAttributes(attrs []AttributeConfig) []domainConfig.AttributeDefinition {
	var defs []domainConfig.AttributeDefinition
	for _, a := range attrs {
		defs = append(defs, domainConfig.AttributeDefinition{
			ID:          a.ID,
			Label:       a.Label,
			Type:        types.ValueType(a.Type),
			Required:    a.Required,
			Description: a.Description,
		})
	}
	return defs
}

// LoadDocument reads and parses a document file into the generic map
// form the inspection service consumes.
func LoadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrDocumentNotFound, "failed to load document",
				goerr.V(PathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read document file",
			goerr.V(PathKey, path))
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(ErrInvalidDocument, err.Error(),
			goerr.V(PathKey, path))
	}

	return doc, nil
}
