package specdata

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
)

// Importer loads the confirmed-material dataset: the products the
// specification analysis found spelled out in the project spec book. Two
// shapes are accepted, the raw per-page extraction output and a flat
// pre-confirmed list.
type Importer struct {
	console  consoles.Console
	resolver *pricing.Resolver
}

func NewImporter(console consoles.Console, resolver *pricing.Resolver) *Importer {
	return &Importer{
		console:  console,
		resolver: resolver,
	}
}

func (i *Importer) Import(path string) (*model.SpecMaterials, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	var file fileJson
	err = json.Unmarshal(contents, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %v", path)
	}

	if file.SpecAnalysis == nil && file.ConfirmedMaterials == nil {
		return nil, errors.Errorf("%v has neither spec_analysis nor confirmed_materials", path)
	}

	result := model.NewSpecMaterials()

	for _, page := range file.SpecAnalysis {
		if page.ParseError {
			continue
		}
		for _, m := range page.Materials {
			i.add(result, m, page.SourcePage)
		}
	}

	for _, m := range file.ConfirmedMaterials {
		i.add(result, m, 0)
	}

	counts := result.CategoryCounts()
	i.console.Printf("Loaded %v confirmed material(s) in %v category(ies) from %v\n",
		result.Len(), len(counts), path)

	return result, nil
}

func (i *Importer) add(result *model.SpecMaterials, m materialJson, sourcePage int) {
	if m.PricingKey == "" {
		return
	}

	category := m.Category
	if category == "" {
		if e := i.resolver.Entry(m.PricingKey); e != nil {
			category = e.Category
		}
	}

	var pages []int
	if len(m.Pages) > 0 {
		pages = m.Pages
	} else if sourcePage > 0 {
		pages = []int{sourcePage}
	}

	var dims []string
	if m.Notes != "" {
		dims = append(dims, m.Notes)
	}

	result.Add(&model.SpecMaterial{
		PricingKey:  m.PricingKey,
		ProductName: m.MaterialName,
		Category:    category,
		Pages:       pages,
		Dimensions:  dims,
	})
}

type fileJson struct {
	SpecAnalysis       []specPageJson `json:"spec_analysis"`
	ConfirmedMaterials []materialJson `json:"confirmed_materials"`
}

type specPageJson struct {
	SourcePage  int            `json:"source_page"`
	ParseError  bool           `json:"parse_error"`
	SpecSection string         `json:"spec_section"`
	Materials   []materialJson `json:"materials"`
}

type materialJson struct {
	MaterialName string `json:"material_name"`
	BrandModel   string `json:"brand_model"`
	Standard     string `json:"standard"`
	PricingKey   string `json:"pricing_key"`
	Usage        string `json:"usage"`
	Notes        string `json:"notes"`
	Category     string `json:"category"`
	Pages        []int  `json:"pages"`
}
