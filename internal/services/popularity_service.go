package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"urbanflow/internal/models/response_models"
	"urbanflow/pkg/utils"
)

const (
	quietHourThreshold = 30

	msgLiveBusyness = "Aglomerație curentă: %s%%"
	msgNoPopularity = "Informații de aglomerație indisponibile (Google nu oferă date pentru această locație)"
	msgQuietHours   = "Ore mai libere: "
	msgBusyAllDay   = "Aglomerație mare în majoritatea zilei."
	msgNoDataToday  = "Fără date detaliate pentru azi."
)

type PopularityServiceInterface interface {
	Analyze(info response_models.PlaceInfo) string
}

type PopularityService struct {
	loc *time.Location
	now func() time.Time
}

func NewPopularityService(loc *time.Location) PopularityServiceInterface {
	return &PopularityService{loc: loc, now: time.Now}
}

// Analyze turns popularity-by-day data, or failing that live busyness,
// into a best-time-to-visit hint for today.
func (p *PopularityService) Analyze(info response_models.PlaceInfo) string {
	if len(info.PopularTimes) == 0 {
		if info.LiveBusyness != nil {
			return fmt.Sprintf(msgLiveBusyness, formatPercent(*info.LiveBusyness))
		}
		return msgNoPopularity
	}

	today := utils.WeekdayIndex(p.now(), p.loc)
	for _, day := range info.PopularTimes {
		if day.Day != today {
			continue
		}
		if day.Data == nil {
			break
		}

		quiet := make([]string, 0, len(day.Data))
		for _, hour := range day.Data {
			if hour.Popularity < quietHourThreshold {
				quiet = append(quiet, fmt.Sprintf("%02d:00 - %s%%", hour.Time, formatPercent(hour.Popularity)))
			}
		}
		if len(quiet) > 0 {
			return msgQuietHours + strings.Join(quiet, ", ")
		}
		return msgBusyAllDay
	}
	return msgNoDataToday
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
