package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/graphmind-ai/backend/internal/server/middleware"
	"github.com/graphmind-ai/backend/internal/util"
	"github.com/graphmind-ai/backend/pkg/graph"
	"github.com/graphmind-ai/backend/pkg/logger"
	"github.com/graphmind-ai/backend/pkg/ner"
	hugotner "github.com/graphmind-ai/backend/pkg/ner/hugot"
	openainer "github.com/graphmind-ai/backend/pkg/ner/openai"
	neo4jstore "github.com/graphmind-ai/backend/pkg/store/neo4j"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	graphStore, err := neo4jstore.NewStore(ctx, neo4jstore.NewStoreParams{
		URI:      util.GetEnvString("NEO4J_URI", "bolt://localhost:7687"),
		Username: util.GetEnvString("NEO4J_USERNAME", "neo4j"),
		Password: util.GetEnv("NEO4J_PASSWORD"),
		Database: util.GetEnvString("NEO4J_DATABASE", "neo4j"),
	})
	if err != nil {
		logger.Fatal("Failed to connect to graph store", "err", err)
	}
	defer graphStore.Close(context.Background())

	recognizer := newRecognizer()
	defer recognizer.Close()

	graphClient := graph.NewGraphClient(graph.NewGraphClientParams{
		Store:             graphStore,
		Recognizer:        recognizer,
		MaxChunkWords:     int(util.GetEnvNumeric("MAX_CHUNK_WORDS", 500)),
		ParallelRecognize: int(util.GetEnvNumeric("NER_PARALLEL_REQ", 4)),
		RecognizeTimeout:  time.Duration(util.GetEnvNumeric("NER_TIMEOUT_SEC", 60)) * time.Second,
	})

	e.Use(mid.AppContextMiddleware(&mid.App{
		Store: graphStore,
		Graph: graphClient,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("100M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// newRecognizer builds the entity recognizer backend selected by NER_ADAPTER.
// The hugot backend loads a local ONNX model once at startup; the openai
// backend talks to any OpenAI-compatible chat endpoint.
func newRecognizer() ner.Recognizer {
	switch util.GetEnv("NER_ADAPTER") {
	case "openai":
		return openainer.NewOpenAIRecognizer(openainer.NewOpenAIRecognizerParams{
			BaseURL: util.GetEnv("NER_CHAT_URL"),
			APIKey:  util.GetEnv("NER_CHAT_KEY"),
			Model:   util.GetEnvString("NER_CHAT_MODEL", "gpt-4o-mini"),
		})
	default:
		recognizer, err := hugotner.NewHugotRecognizer(hugotner.NewHugotRecognizerParams{
			ModelPath: util.GetEnv("NER_MODEL_PATH"),
		})
		if err != nil {
			logger.Fatal("Failed to load NER model", "err", err)
		}
		return recognizer
	}
}
