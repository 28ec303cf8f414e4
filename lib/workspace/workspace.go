package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/importers/analysis"
	"github.com/pescuma/takeoff/lib/importers/specdata"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
	"github.com/pescuma/takeoff/lib/storages"
	"github.com/pescuma/takeoff/lib/storages/orm"
	"github.com/pescuma/takeoff/lib/systems"
	"github.com/pescuma/takeoff/lib/takeoff"
	"github.com/pescuma/takeoff/lib/utils"
)

// Workspace wires the console, the storage and the engines together. It is
// the entry point for both the CLI and the server.
type Workspace struct {
	console  consoles.Console
	storage  storages.Storage
	resolver *pricing.Resolver
}

func NewWorkspace(file string) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.takeoff"); err == nil {
			file = "./.takeoff/takeoff.sqlite"
		} else {
			file = "~/.takeoff/takeoff.sqlite"
		}
	}

	console := consoles.NewStdOutConsole()

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console:  console,
		storage:  storage,
		resolver: pricing.NewDefaultResolver(),
	}, nil
}

func createWorkspaceDir(file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Resolver() *pricing.Resolver {
	return w.resolver
}

func (w *Workspace) Systems() []*systems.System {
	return systems.All()
}

// Estimate runs the standard takeoff and stores the result.
func (w *Workspace) Estimate(name string, m *model.Measurements) (*model.Estimate, error) {
	engine := takeoff.NewStandardEngine(w.resolver)
	result := engine.Compute(name, m)

	err := w.storage.WriteEstimate(result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (w *Workspace) ListEstimates() ([]*model.Estimate, error) {
	return w.storage.LoadEstimates()
}

func (w *Workspace) LoadEstimate(id model.UUID) (*model.Estimate, error) {
	return w.storage.LoadEstimate(id)
}

func (w *Workspace) DeleteEstimate(id model.UUID) error {
	return w.storage.DeleteEstimate(id)
}

// ImportAnalysis loads one drawing analysis file, or every match of a
// doublestar pattern when one is given.
func (w *Workspace) ImportAnalysis(path string) (*model.Analysis, error) {
	importer := analysis.NewImporter(w.console)

	if strings.ContainsAny(path, "*?[{") {
		return importer.ImportAll(".", path)
	}

	return importer.Import(path)
}

func (w *Workspace) ImportSpecMaterials(path string) (*model.SpecMaterials, error) {
	importer := specdata.NewImporter(w.console, w.resolver)
	return importer.Import(path)
}

// DetailTakeoff runs the detail-driven engine against a loaded analysis.
// Plan counts fill in measurement counts the caller left at zero. The
// standard takeoff runs alongside, so the two bids can be compared.
func (w *Workspace) DetailTakeoff(a *model.Analysis, m *model.Measurements) *model.DetailTakeoff {
	analysis.ApplyCounts(m, a)

	engine := takeoff.NewDetailEngine(w.resolver)
	result := engine.Compute(a, m)

	standard := takeoff.NewStandardEngine(w.resolver).Compute("standard comparison", m)
	result.StandardComparison = &standard.BidSummary

	return result
}

// JoinTakeoff fuses the drawing analysis with the confirmed materials.
func (w *Workspace) JoinTakeoff(a *model.Analysis, specs *model.SpecMaterials,
	m *model.Measurements,
) *model.JoinedTakeoff {
	analysis.ApplyCounts(m, a)

	engine := takeoff.NewFusionEngine(w.resolver)
	return engine.Join(a, specs, m)
}

func (w *Workspace) SetGlobalConfig(config string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[config]
	if ok && v == value {
		return false, nil
	}

	(*cfg)[config] = value

	err = w.storage.WriteConfig()
	if err != nil {
		return false, err
	}

	return true, nil
}

func (w *Workspace) GlobalConfig(config string) (string, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", err
	}

	return (*cfg)[config], nil
}
