package orm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
	"github.com/pescuma/takeoff/lib/storages"
	"github.com/pescuma/takeoff/lib/takeoff"
)

func newTestStorage(t *testing.T) storages.Storage {
	t.Helper()

	s, err := NewGormStorage(WithSqliteInMemory(), consoles.NewStdOutConsole())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newTestEstimate(name string) *model.Estimate {
	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 4

	return takeoff.NewStandardEngine(pricing.NewDefaultResolver()).Compute(name, m)
}

func TestEstimateRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	e := newTestEstimate("warehouse")

	assert.NoError(t, s.WriteEstimate(e))

	loaded, err := s.LoadEstimate(e.ID)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)

	assert.Equal(t, e.ID, loaded.ID)
	assert.Equal(t, e.Name, loaded.Name)
	assert.Equal(t, e.Measurements, loaded.Measurements)
	assert.Equal(t, e.AreaItems, loaded.AreaItems)
	assert.Equal(t, e.LinearItems, loaded.LinearItems)
	assert.Equal(t, e.UnitItems, loaded.UnitItems)
	assert.Equal(t, e.Consumables, loaded.Consumables)
	assert.Equal(t, e.Labor, loaded.Labor)
	assert.Equal(t, e.BidSummary, loaded.BidSummary)
	assert.Equal(t, e.Warnings, loaded.Warnings)
}

func TestLoadMissingEstimateIsNil(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	loaded, err := s.LoadEstimate(model.UUID("e-missing"))
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestListEstimates(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	assert.NoError(t, s.WriteEstimate(newTestEstimate("first")))
	assert.NoError(t, s.WriteEstimate(newTestEstimate("second")))

	all, err := s.LoadEstimates()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteEstimate(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	e := newTestEstimate("doomed")

	assert.NoError(t, s.WriteEstimate(e))
	assert.NoError(t, s.DeleteEstimate(e.ID))

	loaded, err := s.LoadEstimate(e.ID)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRewriteUnchangedEstimate(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	e := newTestEstimate("stable")

	assert.NoError(t, s.WriteEstimate(e))
	assert.NoError(t, s.WriteEstimate(e))

	all, err := s.LoadEstimates()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	cfg, err := s.LoadConfig()
	assert.NoError(t, err)
	assert.Empty(t, *cfg)

	(*cfg)["default.system"] = "TPO_Fully_Adhered"
	assert.NoError(t, s.WriteConfig())

	again, err := s.LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "TPO_Fully_Adhered", (*again)["default.system"])
}

func TestConcurrentConfigLoads(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cfg, err := s.LoadConfig()
			assert.NoError(t, err)
			assert.NotNil(t, cfg)
		}()
	}
	wg.Wait()
}
