package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/config"
	"github.com/tgrullon/social_network_api/internal/handlers"
	"github.com/tgrullon/social_network_api/internal/logging"
	"github.com/tgrullon/social_network_api/internal/middleware/auth"
	loggingmw "github.com/tgrullon/social_network_api/internal/middleware/logging"
	"github.com/tgrullon/social_network_api/internal/mykafka"
	"github.com/tgrullon/social_network_api/internal/repo"
	"github.com/tgrullon/social_network_api/internal/service"
	httpserver "github.com/tgrullon/social_network_api/internal/transport/http"
	"github.com/tgrullon/social_network_api/internal/validate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
		defer producer.Close()
	}

	users := &repo.UserRepo{DB: db}
	tokens := &repo.TokenRepo{DB: db}
	friendships := &repo.FriendshipRepo{DB: db}
	posts := &repo.PostRepo{DB: db}
	comments := &repo.CommentRepo{DB: db}
	postComments := &repo.PostCommentRepo{DB: db}

	authSvc := &service.AuthService{
		Users:     users,
		Tokens:    tokens,
		JWTSecret: []byte(cfg.JWT_SECRET),
	}
	friendSvc := &service.FriendshipService{
		Friendships: friendships,
		Users:       users,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.New()
	e.Use(loggingmw.RequestLogger(logger))
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:        &handlers.AuthHandler{Svc: authSvc, Producer: producer},
		UserHandler:        &handlers.UserHandler{Users: users},
		PostHandler:        &handlers.PostHandler{Posts: posts},
		CommentHandler:     &handlers.CommentHandler{Comments: comments, Posts: posts},
		PostCommentHandler: &handlers.PostCommentHandler{PostComments: postComments, Posts: posts},
		FriendHandler:      &handlers.FriendHandler{Svc: friendSvc, Producer: producer},
		Auth: &auth.TokenAuth{
			Users:     users,
			Tokens:    tokens,
			JWTSecret: []byte(cfg.JWT_SECRET),
		},
	})

	go func() {
		if err := e.Start(cfg.HTTP_ADDRESS); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
