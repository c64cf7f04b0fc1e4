package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed data/default_catalog.yaml
var defaultCatalogYAML []byte

// catalogFile mirrors the YAML document layout
type catalogFile struct {
	Races      []Race       `yaml:"races" validate:"required,dive"`
	Hulls      []*Hull      `yaml:"hulls" validate:"required,dive"`
	Components []*Component `yaml:"components" validate:"required,dive"`
}

// Default returns the catalog embedded in the binary.
// It panics if the embedded data is broken, which is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog document from the given filesystem
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := newCatalogValidator().Struct(&doc); err != nil {
		return nil, formatValidationError(err)
	}
	if err := checkUnique(&doc); err != nil {
		return nil, err
	}

	return NewCatalog(doc.Races, doc.Hulls, doc.Components), nil
}

func newCatalogValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("component_type", func(fl validator.FieldLevel) bool {
		return ComponentType(fl.Field().String()).IsValid()
	})
	return v
}

func checkUnique(doc *catalogFile) error {
	races := make(map[int]bool, len(doc.Races))
	for _, race := range doc.Races {
		if races[race.Index] {
			return fmt.Errorf("duplicate race index %d", race.Index)
		}
		races[race.Index] = true
	}
	hulls := make(map[string]bool, len(doc.Hulls))
	for _, hull := range doc.Hulls {
		if hulls[hull.Name] {
			return fmt.Errorf("duplicate hull %q", hull.Name)
		}
		hulls[hull.Name] = true
	}
	comps := make(map[string]bool, len(doc.Components))
	for _, comp := range doc.Components {
		if comps[comp.Name] {
			return fmt.Errorf("duplicate component %q", comp.Name)
		}
		comps[comp.Name] = true
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}
	return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(messages, "\n  "))
}
