package adapters

import (
	"github.com/psy-tools/gcal-extractor/pkg/models/api"
	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

func MapCalendarDomainToApi(cal domain.Calendar) api.Calendar {
	return api.Calendar{
		Id:         cal.ID,
		Name:       cal.Name,
		Primary:    cal.Primary,
		AccessRole: cal.AccessRole,
	}
}

func MapCalendarsDomainToApi(calendars []domain.Calendar) []api.Calendar {
	out := make([]api.Calendar, 0, len(calendars))
	for _, cal := range calendars {
		out = append(out, MapCalendarDomainToApi(cal))
	}
	return out
}
