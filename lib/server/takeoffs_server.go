package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/importers/measures"
)

func (s *server) initTakeoffs(r *gin.Engine) {
	r.POST("/api/takeoffs/details", postP[detailRequest](s.takeoffDetails))
	r.POST("/api/takeoffs/join", postP[joinRequest](s.takeoffJoin))
}

// The analysis and spec files live on the workspace machine: this server
// fronts a local workspace, the heavyweight extraction runs elsewhere.
type detailRequest struct {
	AnalysisFile string                    `json:"analysisFile"`
	Measurements measures.MeasurementsJson `json:"measurements"`
}

type joinRequest struct {
	AnalysisFile string                    `json:"analysisFile"`
	SpecFile     string                    `json:"specFile"`
	Measurements measures.MeasurementsJson `json:"measurements"`
}

func (s *server) takeoffDetails(params *detailRequest) (any, error) {
	if params.AnalysisFile == "" {
		return nil, errors.New("analysisFile is required")
	}

	a, err := s.ws.ImportAnalysis(params.AnalysisFile)
	if err != nil {
		return nil, err
	}

	m, err := params.Measurements.ToModel()
	if err != nil {
		return nil, err
	}

	return s.ws.DetailTakeoff(a, m), nil
}

func (s *server) takeoffJoin(params *joinRequest) (any, error) {
	if params.AnalysisFile == "" {
		return nil, errors.New("analysisFile is required")
	}
	if params.SpecFile == "" {
		return nil, errors.New("specFile is required")
	}

	a, err := s.ws.ImportAnalysis(params.AnalysisFile)
	if err != nil {
		return nil, err
	}

	specs, err := s.ws.ImportSpecMaterials(params.SpecFile)
	if err != nil {
		return nil, err
	}

	m, err := params.Measurements.ToModel()
	if err != nil {
		return nil, err
	}

	return s.ws.JoinTakeoff(a, specs, m), nil
}
