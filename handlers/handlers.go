package handlers

import (
	"errors"
	"fmt"
	"hoteldisplay/core"
	"hoteldisplay/database"
	"hoteldisplay/models"
	"hoteldisplay/service"
	"hoteldisplay/version"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Options controls where static content lives and request limits.
type Options struct {
	PublicDir    string
	MaxBodyBytes int64
}

// Handler serves the display API and static pages.
type Handler struct {
	svcs *service.Services
	opts Options
}

// New constructs a Handler over the service container.
func New(svcs *service.Services, opts Options) *Handler {
	return &Handler{svcs: svcs, opts: opts}
}

// Register mounts every route on r.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(h.limitBody)
	{
		// Settings routes
		api.GET("/settings", h.GetSettings)
		api.POST("/settings", h.UpdateSettings)

		// Upload route
		api.POST("/upload", h.UploadImage)

		// Schedule routes
		api.GET("/schedule", h.ListSchedule)
		api.POST("/schedule", h.CreateScheduleItem)
		api.PUT("/schedule/:id", h.UpdateScheduleItem)
		api.DELETE("/schedule/:id", h.DeleteScheduleItem)

		// Service routes
		api.GET("/services", h.ListServices)
		api.POST("/services", h.CreateService)
		api.PUT("/services/:id", h.UpdateService)
		api.DELETE("/services/:id", h.DeleteService)

		// Display bundle and health
		api.GET("/display", h.GetDisplay)
		api.GET("/health", h.HealthCheck)
	}

	// Uploaded images
	r.Static(service.ImagesURLPrefix, h.svcs.Upload.Dir())

	// UI entry points
	r.GET("/display", h.page("display"))
	r.GET("/admin", h.page("admin"))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/display")
	})

	// Remaining UI assets come straight from the public directory.
	assets := http.FileServer(http.Dir(h.opts.PublicDir))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respondError(c, http.StatusNotFound, fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			respondError(c, http.StatusNotFound, errors.New("not found"))
			return
		}
		assets.ServeHTTP(c.Writer, c.Request)
	})
}

func (h *Handler) limitBody(c *gin.Context) {
	if h.opts.MaxBodyBytes > 0 && c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBodyBytes)
	}
	c.Next()
}

func (h *Handler) page(name string) gin.HandlerFunc {
	index := filepath.Join(h.opts.PublicDir, name, "index.html")
	return func(c *gin.Context) {
		c.File(index)
	}
}

// GetSettings returns all settings as one object
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.svcs.Settings.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts every key/value pair of the body atomically
func (h *Handler) UpdateSettings(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	values, err := service.StringifySettingValues(body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.svcs.Settings.Update(values); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c)
}

type uploadRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// UploadImage stores a base64 data-URI image under the images directory
func (h *Handler) UploadImage(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	path, err := h.svcs.Upload.Save(req.Image, req.Filename)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}

// ListSchedule lists active schedule items
func (h *Handler) ListSchedule(c *gin.Context) {
	items, err := h.svcs.Schedule.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateScheduleItem creates a schedule item
func (h *Handler) CreateScheduleItem(c *gin.Context) {
	var req models.ScheduleItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := h.svcs.Schedule.Create(req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": item.ID})
}

// UpdateScheduleItem replaces a schedule item
func (h *Handler) UpdateScheduleItem(c *gin.Context) {
	id, ok := parseID(c, "schedule item")
	if !ok {
		return
	}

	var req models.ScheduleItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.svcs.Schedule.Replace(id, req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c)
}

// DeleteScheduleItem deletes a schedule item
func (h *Handler) DeleteScheduleItem(c *gin.Context) {
	id, ok := parseID(c, "schedule item")
	if !ok {
		return
	}

	if err := h.svcs.Schedule.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c)
}

// ListServices lists active services
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.svcs.Catalog.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService creates a service
func (h *Handler) CreateService(c *gin.Context) {
	var req models.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	svc, err := h.svcs.Catalog.Create(req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": svc.ID})
}

// UpdateService replaces a service
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	var req models.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.svcs.Catalog.Replace(id, req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c)
}

// DeleteService deletes a service
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	if err := h.svcs.Catalog.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c)
}

// GetDisplay returns the settings, schedule and services bundle for the TV
func (h *Handler) GetDisplay(c *gin.Context) {
	bundle, err := h.svcs.Display.Bundle()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// HealthCheck reports store reachability and SQLite contention counters
func (h *Handler) HealthCheck(c *gin.Context) {
	status, code, dbState := "ok", http.StatusOK, "up"
	if !h.svcs.StoreUp(c.Request.Context()) {
		status, code, dbState = "degraded", http.StatusServiceUnavailable, "down"
	}

	c.JSON(code, gin.H{
		"status":               status,
		"database":             dbState,
		"version":              version.GetFullVersion(),
		"sqlite_busy_errors":   database.SQLiteBusyErrorsTotal(),
		"sqlite_locked_errors": database.SQLiteLockedErrorsTotal(),
	})
}

func parseID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("%w: invalid %s id %q", core.ErrInvalidRequest, what, c.Param("id")))
		return 0, false
	}
	return id, true
}
