package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-concierge/config"
	_ "meeting-concierge/docs" // Swagger docs
	agentPkg "meeting-concierge/internal/agent"
	"meeting-concierge/internal/agent/orchestrator"
	"meeting-concierge/internal/agent/tools"
	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/httpserver"
	"meeting-concierge/internal/knowledge"
	knowledgeHTTP "meeting-concierge/internal/knowledge/delivery/http"
	knowledgeUC "meeting-concierge/internal/knowledge/usecase"
	"meeting-concierge/internal/registry"
	registryHTTP "meeting-concierge/internal/registry/delivery/http"
	"meeting-concierge/internal/scheduler"
	schedulerHTTP "meeting-concierge/internal/scheduler/delivery/http"
	schedulerUC "meeting-concierge/internal/scheduler/usecase"
	"meeting-concierge/internal/suggestion"
	"meeting-concierge/pkg/datemath"
	"meeting-concierge/pkg/gcalendar"
	"meeting-concierge/pkg/log"
	"meeting-concierge/pkg/qdrant"
	"meeting-concierge/pkg/voyage"
	"meeting-concierge/pkg/watsonx"
)

// @title       Meeting Concierge API
// @description LLM-driven meeting scheduling with Google Calendar availability, group registries and a company-document knowledge base.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Language-model gateway
	gateway, err := watsonx.New(watsonx.Config{
		APIKey:    cfg.Watsonx.APIKey,
		ProjectID: cfg.Watsonx.ProjectID,
		ModelID:   cfg.Watsonx.ModelID,
		Region:    cfg.Watsonx.Region,
		BaseURL:   cfg.Watsonx.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize watsonx gateway: ", err)
		return
	}
	logger.Infof(ctx, "Watsonx gateway ready, model %s", gateway.Model())

	// 4. Google Calendar availability/booking
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar: ", err)
		return
	}

	timezone := cfg.Scheduling.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	calendarService := calendar.NewService(logger, calendarClient, timezone)
	hours := suggestion.WorkingHours{
		Start: cfg.Scheduling.WorkingHoursStart,
		End:   cfg.Scheduling.WorkingHoursEnd,
	}
	suggester := suggestion.New(logger, gateway)

	// 5. Registries
	store := registry.NewStore()

	// 6. Knowledge base (optional: needs a Voyage API key)
	var knowledgeHandler knowledgeHTTP.Handler
	var companyKnowledge scheduler.CompanyKnowledge
	if cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Error(ctx, "Failed to initialize Voyage client: ", vErr)
			return
		}
		vectorStore := qdrant.NewClient(cfg.Qdrant.URL)

		knowledgeUseCase, kErr := knowledgeUC.New(logger, embedder, vectorStore, gateway, knowledgeUC.Config{
			Collection:   cfg.Qdrant.CollectionName,
			VectorSize:   cfg.Qdrant.VectorSize,
			ChunkSize:    cfg.Knowledge.ChunkSize,
			ChunkOverlap: cfg.Knowledge.ChunkOverlap,
			TopK:         cfg.Knowledge.TopK,
			CacheSize:    cfg.Knowledge.AnswerCacheSize,
		})
		if kErr != nil {
			logger.Error(ctx, "Failed to initialize knowledge base: ", kErr)
			return
		}
		knowledgeHandler = knowledgeHTTP.New(logger, knowledgeUseCase)
		companyKnowledge = knowledgeUseCase
		logger.Info(ctx, "Knowledge base initialized")
	} else {
		companyKnowledge = notTrainedKnowledge{}
		logger.Warn(ctx, "VOYAGE_API_KEY missing, document knowledge base disabled")
	}

	// 7. Scheduling usecase and agent
	schedulerUseCase := schedulerUC.New(logger, gateway, calendarService, store, suggester, companyKnowledge, hours)

	toolRegistry := agentPkg.NewToolRegistry()
	toolRegistry.Register(tools.NewCheckAvailabilityTool(calendarService, dateMathParser, logger))
	toolRegistry.Register(tools.NewCheckGroupAvailabilityTool(calendarService, store, dateMathParser, logger))
	toolRegistry.Register(tools.NewScheduleMeetingTool(schedulerUseCase, dateMathParser, logger))
	toolRegistry.Register(tools.NewSuggestAlternativeTool(suggester, dateMathParser, hours, logger))
	agentRunner := orchestrator.New(gateway, toolRegistry, logger)

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		SchedulerHandler: schedulerHTTP.New(logger, schedulerUseCase, agentRunner),
		RegistryHandler:  registryHTTP.New(logger, store),
		KnowledgeHandler: knowledgeHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// notTrainedKnowledge stands in when the knowledge base is disabled, so
// company questions report the untrained state instead of crashing.
type notTrainedKnowledge struct{}

func (notTrainedKnowledge) Ask(ctx context.Context, query string) (string, error) {
	return "", knowledge.ErrNotTrained
}
