package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/takeoff/lib/pricing"
)

func (s *server) initPricing(r *gin.Engine) {
	r.GET("/api/pricing/:key", getU[pricingKeyParams](s.pricingGet))
}

type pricingKeyParams struct {
	Key string `uri:"key"`
}

func (s *server) pricingGet(params *pricingKeyParams) (any, error) {
	resolver := s.ws.Resolver()

	price, found := resolver.Price(params.Key)
	if !found {
		return nil, errorNotFound
	}

	result := gin.H{
		"pricingKey": params.Key,
		"price":      price,
	}

	if e := resolver.Entry(params.Key); e != nil {
		result["name"] = e.CanonicalName
		result["category"] = e.Category
		result["unit"] = e.Unit
	}

	if cov, ok := pricing.CoverageFor(params.Key); ok {
		result["coverage"] = gin.H{
			"sqftPerUnit": cov.SqftPerUnit,
			"lfPerUnit":   cov.LfPerUnit,
			"each":        cov.Each,
			"unit":        cov.Unit,
			"scope":       cov.Scope().String(),
		}
	}

	return result, nil
}
