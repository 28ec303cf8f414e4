package storages

import (
	"github.com/pescuma/takeoff/lib/model"
)

type Storage interface {
	LoadEstimates() ([]*model.Estimate, error)
	LoadEstimate(id model.UUID) (*model.Estimate, error)
	WriteEstimate(e *model.Estimate) error
	DeleteEstimate(id model.UUID) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}

type Factory = func(path string) (Storage, error)
