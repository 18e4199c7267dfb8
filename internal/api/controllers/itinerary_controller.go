package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"urbanflow/internal/config"
	"urbanflow/internal/models/request_models"
	"urbanflow/internal/models/response_models"
	"urbanflow/internal/services"
	"urbanflow/pkg/utils"
)

const indexTemplate = "index.tmpl"

type itineraryPage struct {
	Sentence   string
	Error      string
	RouteError string
	Route      []response_models.RouteStop
	Total      *response_models.RouteSummary
	Visits     []response_models.VisitResponse
}

type ItineraryController struct {
	extractor    services.LocationExtractorInterface
	routeService services.RouteServiceInterface
	visitService services.VisitServiceInterface
	historyLimit int
}

func NewItineraryController(
	cfg config.Config,
	extractor services.LocationExtractorInterface,
	routeService services.RouteServiceInterface,
	visitService services.VisitServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		extractor:    extractor,
		routeService: routeService,
		visitService: visitService,
		historyLimit: cfg.VisitHistoryLimit,
	}
}

// ShowItinerary renders the empty form with the visit history.
func (ic *ItineraryController) ShowItinerary(c *gin.Context) {
	ic.render(c, itineraryPage{})
}

// CreateItinerary parses the submitted sentence and renders the route.
func (ic *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBind(&req); err != nil {
		ic.render(c, itineraryPage{Error: utils.MsgEnterTwoLocations})
		return
	}

	page := itineraryPage{Sentence: strings.TrimSpace(req.Itinerary)}
	if page.Sentence == "" {
		ic.render(c, page)
		return
	}

	// History is read before the new route records its visits.
	visits, err := ic.visitService.GetRecentVisits(c.Request.Context(), ic.historyLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	page.Visits = visits

	locations := ic.extractor.ExtractLocations(page.Sentence)
	if len(locations) < 2 {
		page.Error = utils.MsgEnterTwoLocations
		c.HTML(http.StatusOK, indexTemplate, page)
		return
	}

	itinerary, err := ic.routeService.CalculateRoute(c.Request.Context(), locations)
	if err != nil {
		page.RouteError = utils.RouteErrorMessage(err)
	} else {
		page.Route = itinerary.Stops
		page.Total = itinerary.Summary
	}
	c.HTML(http.StatusOK, indexTemplate, page)
}

func (ic *ItineraryController) Health(c *gin.Context) {
	utils.RespondOK(c)
}

func (ic *ItineraryController) render(c *gin.Context, page itineraryPage) {
	visits, err := ic.visitService.GetRecentVisits(c.Request.Context(), ic.historyLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	page.Visits = visits
	c.HTML(http.StatusOK, indexTemplate, page)
}
