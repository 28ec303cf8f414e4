package server

import (
	"github.com/gin-gonic/gin"
)

func (s *server) initSystems(r *gin.Engine) {
	r.GET("/api/systems", get(s.systemsList))
}

func (s *server) systemsList() (any, error) {
	var result []gin.H

	for _, sys := range s.ws.Systems() {
		result = append(result, gin.H{
			"type":                 sys.Type,
			"name":                 sys.Meta.DisplayName,
			"specRef":              sys.Meta.SpecRef,
			"labourMultiplier":     sys.Meta.LabourMultiplier,
			"mechanicalMultiplier": sys.Meta.MechanicalMultiplier,
			"generalReqsPct":       sys.Meta.GeneralReqsPct,
			"areaLayers":           len(sys.AreaLayers),
			"linearItems":          len(sys.LinearItems),
			"unitItems":            len(sys.UnitItems),
		})
	}

	return result, nil
}
