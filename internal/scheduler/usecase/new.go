package usecase

import (
	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/registry"
	"meeting-concierge/internal/scheduler"
	"meeting-concierge/internal/suggestion"
	pkgLog "meeting-concierge/pkg/log"
	"meeting-concierge/pkg/watsonx"
)

type implUseCase struct {
	l         pkgLog.Logger
	gateway   watsonx.IWatsonx
	calendar  calendar.Service
	groups    registry.GroupDirectory
	suggester suggestion.Generator
	knowledge scheduler.CompanyKnowledge
	hours     suggestion.WorkingHours
}

// New creates a new scheduling UseCase instance.
func New(
	l pkgLog.Logger,
	gateway watsonx.IWatsonx,
	cal calendar.Service,
	groups registry.GroupDirectory,
	suggester suggestion.Generator,
	knowledge scheduler.CompanyKnowledge,
	hours suggestion.WorkingHours,
) *implUseCase {
	return &implUseCase{
		l:         l,
		gateway:   gateway,
		calendar:  cal,
		groups:    groups,
		suggester: suggester,
		knowledge: knowledge,
		hours:     hours,
	}
}
