package server

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/amiralz/calendar-backend/config"
	"github.com/amiralz/calendar-backend/internal/handlers"
	"github.com/amiralz/calendar-backend/internal/middleware"
	"github.com/amiralz/calendar-backend/internal/store"
	"github.com/gin-gonic/gin"
)

//go:embed templates
var templatesFS embed.FS

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	var eventStore store.EventStore
	if cfg.StorageMode == "client" {
		eventStore = store.NewClientStore()
	} else {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %v", err)
		}
		eventStore = store.NewDatabaseStore(db)
	}

	if err := eventStore.EnsureSeeded(); err != nil {
		return fmt.Errorf("failed to seed preset events: %v", err)
	}

	r := NewRouter(eventStore)

	return r.Run(":" + cfg.Port)
}

// NewRouter builds the gin engine with the full route table. Exported so
// tests can run requests against the same engine the server uses.
func NewRouter(eventStore store.EventStore) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.EventStoreMiddleware(eventStore))

	setupRoutes(r)

	return r
}

func setupRoutes(r *gin.Engine) {
	r.GET("/", handlers.Index)

	api := r.Group("/api")
	{
		api.GET("/calendar/:year/:month", handlers.GetCalendar)
		api.GET("/years", handlers.GetYears)

		events := api.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.POST("", handlers.CreateEvent)
			events.PUT("/:id", handlers.UpdateEvent)
			events.DELETE("/:id", handlers.DeleteEvent)
		}
	}
}
