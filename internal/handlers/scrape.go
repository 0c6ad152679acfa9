package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type ScrapeHandler struct {
	scraperService services.ScraperService
}

func NewScrapeHandler(scraperService services.ScraperService) *ScrapeHandler {
	return &ScrapeHandler{scraperService: scraperService}
}

func (sh *ScrapeHandler) Run(c *gin.Context) {
	run, err := sh.scraperService.RunCatalogScrape(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "scrape_failed", err)
		return
	}
	RespondOK(c, run)
}

func (sh *ScrapeHandler) Status(c *gin.Context) {
	run, err := sh.scraperService.LatestRun(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusNotFound, "no_scrape_run", err)
		return
	}
	RespondOK(c, run)
}
