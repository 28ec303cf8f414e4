package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/takeoff/lib/importers/measures"
	"github.com/pescuma/takeoff/lib/model"
)

func (s *server) initEstimates(r *gin.Engine) {
	r.GET("/api/estimates", getP[ListParams](s.estimatesList))
	r.GET("/api/estimates/:id", getU[idParams](s.estimatesGet))
	r.DELETE("/api/estimates/:id", getU[idParams](s.estimatesDelete))
	r.POST("/api/estimates", postP[estimateRequest](s.estimatesCreate))
}

type ListParams struct {
	GridParams

	FilterName   string `form:"name"`
	FilterSystem string `form:"system"`
}

type idParams struct {
	ID string `uri:"id"`
}

type estimateRequest struct {
	Name         string                    `json:"name"`
	Measurements measures.MeasurementsJson `json:"measurements"`
}

func (s *server) estimatesList(params *ListParams) (any, error) {
	estimates, err := s.ws.ListEstimates()
	if err != nil {
		return nil, err
	}

	estimates = filterEstimates(estimates, params)

	asc := params.Asc == nil || *params.Asc
	switch params.Sort {
	case "name":
		sortBy(estimates, func(e *model.Estimate) string { return e.Name }, asc)
	case "total":
		sortBy(estimates, func(e *model.Estimate) float64 { return e.BidSummary.TotalEstimate }, asc)
	default:
		sortBy(estimates, func(e *model.Estimate) int64 { return e.CreatedAt.UnixMilli() }, asc)
	}

	estimates = paginate(estimates, params.Offset, params.Limit)

	var result []gin.H
	for _, e := range estimates {
		result = append(result, s.toEstimateSummary(e))
	}

	return result, nil
}

func filterEstimates(estimates []*model.Estimate, params *ListParams) []*model.Estimate {
	var result []*model.Estimate

	for _, e := range estimates {
		if params.FilterName != "" && e.Name != params.FilterName {
			continue
		}
		if params.FilterSystem != "" && string(e.Measurements.System) != params.FilterSystem {
			continue
		}

		result = append(result, e)
	}

	return result
}

func (s *server) estimatesGet(params *idParams) (any, error) {
	e, err := s.ws.LoadEstimate(model.UUID(params.ID))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errorNotFound
	}

	return e, nil
}

func (s *server) estimatesDelete(params *idParams) (any, error) {
	e, err := s.ws.LoadEstimate(model.UUID(params.ID))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errorNotFound
	}

	err = s.ws.DeleteEstimate(e.ID)
	if err != nil {
		return nil, err
	}

	return gin.H{"deleted": e.ID}, nil
}

func (s *server) estimatesCreate(params *estimateRequest) (any, error) {
	m, err := params.Measurements.ToModel()
	if err != nil {
		return nil, err
	}

	return s.ws.Estimate(params.Name, m)
}

func (s *server) toEstimateSummary(e *model.Estimate) gin.H {
	return gin.H{
		"id":            e.ID,
		"name":          e.Name,
		"createdAt":     e.CreatedAt,
		"system":        e.Measurements.System,
		"roofAreaSqft":  e.Measurements.TotalRoofAreaSqft,
		"totalEstimate": e.BidSummary.TotalEstimate,
		"perSqft":       e.BidSummary.PerSqft,
		"warnings":      len(e.Warnings),
	}
}
