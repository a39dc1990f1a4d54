// The server binary is the web front-end of the weather assistant. This file
// is the composition root: it loads configuration, wires the providers, rule
// engine, LLM client and session store together, and runs the gin server with
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jmbarreiro1/mcp-weather/internal/agent"
	"github.com/jmbarreiro1/mcp-weather/internal/config"
	"github.com/jmbarreiro1/mcp-weather/internal/llm"
	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
	"github.com/jmbarreiro1/mcp-weather/internal/session"
	"github.com/jmbarreiro1/mcp-weather/internal/tools"
	"github.com/jmbarreiro1/mcp-weather/internal/version"
	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := version.GetBuildInfo()
	log.Printf("🚀 Starting Weather Assistant | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	resolver := weather.NewResolver(cfg.Resolver)
	service := weather.NewService(
		weather.NewAccuWeather(cfg.AccuWeatherKey, cfg.DefaultLanguage, resolver),
		weather.NewOpenMeteo(resolver),
	)
	engine := recommend.NewEngineWithConfig(cfg.Recommend)

	sessions := initSessions(cfg)
	assistant := initAgent(cfg, service, engine, sessions)
	log.Println("✅ All services initialized.")

	handler := NewHandler(service, engine, assistant, cfg.DefaultLanguage)

	gin.SetMode(os.Getenv("GIN_MODE"))
	router := gin.Default()
	router.GET("/healthz", handler.HandleHealth)
	router.POST("/get_weather", handler.HandleGetWeather)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", handler.HandleChat)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: router}
	runServerWithGracefulShutdown(srv)
}

// initSessions connects the conversation memory. Redis being unconfigured or
// unreachable is not fatal: chat just runs stateless.
func initSessions(cfg *config.AppConfig) *session.Store {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, conversations will be stateless.")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Could not connect to Redis at %s, conversations will be stateless: %v", cfg.RedisAddr, err)
		return nil
	}
	log.Println("✅ Connected to Redis for conversation memory.")
	return session.NewStore(rdb)
}

// initAgent picks the LLM backend (Gemini when a key is configured, local
// Ollama otherwise) and registers the two assistant tools.
func initAgent(cfg *config.AppConfig, service *weather.Service, engine *recommend.Engine, sessions *session.Store) *agent.Agent {
	manager := tools.NewToolManager()
	manager.Register(tools.NewWeatherTool(service))
	manager.Register(tools.NewActivityTool(engine))
	log.Printf("✅ Tool manager initialized with %d tools.", manager.Count())

	var client llm.LLMClient
	model := cfg.OllamaModel
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("❌ FATAL: failed to create Gemini client: %v", err)
		}
		client = gemini
		model = cfg.GeminiModel
		log.Printf("✅ Using Gemini model %s.", model)
	} else {
		client = llm.NewOllamaClient(cfg.OllamaHost)
		log.Printf("✅ Using local Ollama model %s.", model)
	}
	return agent.New(client, model, manager, sessions)
}

func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Weather assistant is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}
	log.Println("👋 Server exited gracefully.")
}
