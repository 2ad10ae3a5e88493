package dashboard

import (
	"errors"
	"fmt"

	"roleradar-dashboard/internal/apiclient"
	"roleradar-dashboard/internal/view"
)

type Kind string

const (
	KindNetwork Kind = "network"
	KindParse   Kind = "parse"
	KindTarget  Kind = "target"
)

// Loader names.
const (
	LoaderSummary       = "summary"
	LoaderCompanies     = "companies"
	LoaderOpportunities = "opportunities"
)

// LoadError is the outcome of a failed loader.
type LoadError struct {
	Loader string
	Kind   Kind
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Loader, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func classify(loader string, err error) *LoadError {
	if err == nil {
		return nil
	}
	kind := KindNetwork
	switch {
	case errors.Is(err, view.ErrTargetMissing):
		kind = KindTarget
	case errors.Is(err, apiclient.ErrDecode):
		kind = KindParse
	}
	return &LoadError{Loader: loader, Kind: kind, Err: err}
}
