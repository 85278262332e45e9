// Package gen turns a file of function inspections into a resolution
// report: every annotation resolved, mapped to its OpenAPI type, and the
// missing dependencies collected.
package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/griffnb/core-annotation/internal/console"
	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/griffnb/core-annotation/internal/loader"
	"github.com/griffnb/core-annotation/internal/model"
	"github.com/griffnb/core-annotation/internal/orchestrator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

type genTypeWriter func(*Config, *Report) error

// Gen presents the report generation tool.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONReport,
		"yaml": gen.writeYAMLReport,
		"yml":  gen.writeYAMLReport,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	// InputFile is the json or yaml file holding the function inspections.
	InputFile string

	// ScopeFile optionally holds scope stubs: a name to kind mapping
	// standing in for whatever is visible to the inspected code.
	ScopeFile string

	// OutputDir represents the output directory for the generated report.
	OutputDir string

	// OutputTypes define the report formats to generate (json, yaml).
	OutputTypes []string

	// InstanceName distinguishes multiple reports in the same project.
	// The default value is "report".
	InstanceName string

	// GoPackages maps annotation module roots to Go import paths for the
	// go/packages provider.
	GoPackages map[string]string

	// ParseDepth preloads dependency packages up to this depth.
	ParseDepth int
}

// Build reads the inspections, resolves every annotation, and writes the
// report in the configured formats.
func (g *Gen) Build(config *Config) error {
	if config.InstanceName == "" {
		config.InstanceName = "report"
	}
	if len(config.OutputTypes) == 0 {
		config.OutputTypes = []string{"json"}
	}

	inspections, err := readInspections(config.InputFile)
	if err != nil {
		return err
	}

	scope, err := ReadScope(config.ScopeFile)
	if err != nil {
		return err
	}

	console.Logger.Debug("loaded %d inspections from %s", len(inspections), config.InputFile)

	orc := orchestrator.New(&orchestrator.Config{
		Providers: BuildProviders(config),
		Debug:     console.Logger,
	})

	report := g.buildReport(config, orc, inspections, scope)

	for _, outputType := range config.OutputTypes {
		writer, ok := g.outputTypeMap[strings.ToLower(outputType)]
		if !ok {
			return fmt.Errorf("output type %q not supported", outputType)
		}
		if err := writer(config, report); err != nil {
			return err
		}
	}

	return nil
}

// BuildProviders assembles the loader providers configured for this run.
func BuildProviders(config *Config) []loader.Provider {
	if len(config.GoPackages) == 0 {
		return nil
	}

	options := []loader.GoPackagesOption{
		loader.WithGoDebugger(console.Logger),
	}
	for root, importPath := range config.GoPackages {
		options = append(options, loader.WithImportPath(root, importPath))
	}
	if config.ParseDepth > 0 {
		options = append(options, loader.WithDependencyDepth(config.ParseDepth))
	}

	return []loader.Provider{loader.NewGoPackagesProvider(options...)}
}

// readInspections loads the inspection list from a json or yaml file.
func readInspections(inputFile string) ([]model.FunctionInspection, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("input file is required")
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}

	if isYAMLFile(inputFile) {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("cannot convert input yaml to json: %w", err)
		}
	}

	var inspections []model.FunctionInspection
	if err := json.Unmarshal(data, &inspections); err != nil {
		return nil, fmt.Errorf("cannot parse inspections from %s: %w", inputFile, err)
	}

	return inspections, nil
}

// ReadScope loads scope stubs: module stubs mark roots as importable,
// anything else stands in as an opaque class.
func ReadScope(scopeFile string) (domain.Scope, error) {
	if scopeFile == "" {
		return domain.Scope{}, nil
	}

	data, err := os.ReadFile(scopeFile)
	if err != nil {
		return nil, fmt.Errorf("could not open scope file: %w", err)
	}

	if isYAMLFile(scopeFile) {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("cannot convert scope yaml to json: %w", err)
		}
	}

	var stubs map[string]string
	if err := json.Unmarshal(data, &stubs); err != nil {
		return nil, fmt.Errorf("cannot parse scope from %s: %w", scopeFile, err)
	}

	scope := make(domain.Scope, len(stubs))
	for name, kind := range stubs {
		if kind == string(domain.KindModule) {
			scope[name] = domain.NewModuleRef(name)
			continue
		}
		scope[name] = domain.NewClass("__main__", name)
	}

	return scope, nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (g *Gen) writeJSONReport(config *Config, report *Report) error {
	data, err := g.jsonIndent(report)
	if err != nil {
		return err
	}

	fileName := path.Join(config.OutputDir, config.InstanceName+".json")
	console.Logger.Debug("create report at %+v", fileName)
	return writeFile(data, fileName)
}

func (g *Gen) writeYAMLReport(config *Config, report *Report) error {
	data, err := g.json(report)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(data)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	fileName := path.Join(config.OutputDir, config.InstanceName+".yaml")
	console.Logger.Debug("create report at %+v", fileName)
	return writeFile(y, fileName)
}

func writeFile(data []byte, fileName string) error {
	if dir := filepath.Dir(fileName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.WriteFile(fileName, data, 0o644)
}

// titleCaser renders the instance name as a report title.
var titleCaser = cases.Title(language.English)
