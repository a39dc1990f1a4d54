// The assistant binary is the interactive command-line front-end. Inputs that
// look like weather questions are answered directly through the provider
// chain and the rule engine; everything else goes through the LLM agent with
// the tools attached.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

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

// cliConversationID keys the REPL's conversation memory in Redis. The
// "clear" command deletes it.
const cliConversationID = "cli"

type app struct {
	service         *weather.Service
	engine          *recommend.Engine
	agent           *agent.Agent
	defaultLanguage string
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resolver := weather.NewResolver(cfg.Resolver)
	service := weather.NewService(
		weather.NewAccuWeather(cfg.AccuWeatherKey, cfg.DefaultLanguage, resolver),
		weather.NewOpenMeteo(resolver),
	)
	engine := recommend.NewEngineWithConfig(cfg.Recommend)

	manager := tools.NewToolManager()
	manager.Register(tools.NewWeatherTool(service))
	manager.Register(tools.NewActivityTool(engine))

	var client llm.LLMClient
	model := cfg.OllamaModel
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		model = cfg.GeminiModel
	} else {
		client = llm.NewOllamaClient(cfg.OllamaHost)
	}

	a := &app{
		service:         service,
		engine:          engine,
		agent:           agent.New(client, model, manager, initSessions(cfg)),
		defaultLanguage: cfg.DefaultLanguage,
	}
	a.run()
}

func initSessions(cfg *config.AppConfig) *session.Store {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: Redis unavailable, conversation memory disabled. (%v)\n", err)
		return nil
	}
	return session.NewStore(rdb)
}

func (a *app) run() {
	build := version.GetBuildInfo()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Welcome to the Weather and Activity Assistant! (v%s)\n", build.Version)
	fmt.Println("Type 'help' to see available commands")
	fmt.Println(strings.Repeat("=", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nHow can I assist you? ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye! I hope you found the information useful.")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "help":
			printHelp()
			continue
		case "exit", "quit":
			fmt.Println("\nGoodbye! I hope you found the information useful.")
			return
		case "clear":
			a.agent.ClearSession(context.Background(), cliConversationID)
			fmt.Println("Conversation memory cleared.")
			continue
		}

		a.handle(input)
	}
}

// handle answers one input line. Weather-intent inputs skip the LLM entirely.
func (a *app) handle(input string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if agent.DetectIntent(input) == agent.IntentWeather {
		city, language := agent.ExtractCityAndLanguage(input, a.defaultLanguage)
		report, err := a.service.Current(ctx, city)
		if err != nil {
			fmt.Printf("\nAssistant: %v\n", err)
			return
		}
		formatted := report.Format()
		fmt.Printf("\nAssistant: %s\n%s\n", formatted, a.engine.Recommend(formatted, language))
		return
	}

	fmt.Println("\nThinking...")
	content, _, err := a.agent.Respond(ctx, cliConversationID, input)
	if err != nil {
		fmt.Printf("\nSorry, an error occurred: %v\n", err)
		fmt.Println("Try rephrasing your question or type 'help' for more options.")
		return
	}
	fmt.Printf("\nAssistant: %s\n", content)
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("- help: Shows this help")
	fmt.Println("- exit: Exits the program")
	fmt.Println("- clear: Clears the conversation memory")
	fmt.Println("\nYou can ask for the weather in any city, for example:")
	fmt.Println("- What's the weather in Barcelona?")
	fmt.Println("- What activities do you recommend for a rainy day?")
}
