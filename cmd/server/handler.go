package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmbarreiro1/mcp-weather/internal/agent"
	"github.com/jmbarreiro1/mcp-weather/internal/llm"
	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

// weatherService is the slice of the weather service the handler needs; tests
// substitute a fake provider chain through it.
type weatherService interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

// Handler serves the HTTP surface: the form-based weather endpoint kept
// compatible with the original front-end, the JSON chat endpoint, and the
// health probe.
type Handler struct {
	weather         weatherService
	engine          *recommend.Engine
	agent           *agent.Agent
	defaultLanguage string
}

func NewHandler(service weatherService, engine *recommend.Engine, assistant *agent.Agent, defaultLanguage string) *Handler {
	return &Handler{
		weather:         service,
		engine:          engine,
		agent:           assistant,
		defaultLanguage: defaultLanguage,
	}
}

// weatherResponse is the flat JSON contract of POST /get_weather.
type weatherResponse struct {
	City            string   `json:"city"`
	Condition       string   `json:"condition"`
	Temperature     *float64 `json:"temperature"`
	RealFeel        *float64 `json:"real_feel"`
	Humidity        *int     `json:"humidity"`
	Wind            *float64 `json:"wind"`
	WindUnit        string   `json:"wind_unit"`
	Provider        string   `json:"provider"`
	Report          string   `json:"report"`
	Recommendations string   `json:"recommendations"`
}

// HandleGetWeather accepts the form field "city" and responds with the flat
// weather record plus activity recommendations. Lookup failures map to 400
// with type "weather_error"; anything else is a 500 "unexpected_error".
func (h *Handler) HandleGetWeather(c *gin.Context) {
	city := c.PostForm("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City is required"})
		return
	}
	log.Printf("--- Weather request for city: %q ---", city)

	report, err := h.weather.Current(c.Request.Context(), city)
	if err != nil {
		var lookupErr *weather.LookupError
		if errors.Is(err, weather.ErrEmptyCity) || errors.As(err, &lookupErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"type":  "weather_error",
			})
			return
		}
		log.Printf("Unexpected error for city %q: %v", city, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An unexpected error occurred",
			"details": err.Error(),
			"type":    "unexpected_error",
		})
		return
	}

	formatted := report.Format()
	c.JSON(http.StatusOK, weatherResponse{
		City:            report.City,
		Condition:       report.Condition,
		Temperature:     report.Temperature,
		RealFeel:        report.RealFeel,
		Humidity:        report.Humidity,
		Wind:            report.WindSpeed,
		WindUnit:        report.WindUnit,
		Provider:        report.Provider,
		Report:          formatted,
		Recommendations: h.engine.Recommend(formatted, h.defaultLanguage),
	})
}

// chatRequest is the JSON body of POST /api/v1/chat.
type chatRequest struct {
	Prompt         string `json:"prompt" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

type chatResponse struct {
	Content        string    `json:"content"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Usage          llm.Usage `json:"usage"`
	LatencyMS      int64     `json:"latency_ms"`
}

// HandleChat runs one assistant turn through the agent.
func (h *Handler) HandleChat(c *gin.Context) {
	start := time.Now()
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	log.Printf("--- Chat request (Convo: %s, Prompt: %.30q...) ---", req.ConversationID, req.Prompt)

	content, usage, err := h.agent.Respond(c.Request.Context(), req.ConversationID, req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chatResponse{
		Content:        content,
		ConversationID: req.ConversationID,
		Usage:          usage,
		LatencyMS:      time.Since(start).Milliseconds(),
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
