package main

import (
	"context"
	"fmt"
	"message-board/domain"
	grpc2 "message-board/grpc"
	"message-board/internal"
	"message-board/wire"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/pflag"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"MESSAGE_BOARD_ADDR,default=localhost:8080"`
	Timeout       time.Duration `env:"MESSAGE_BOARD_TIMEOUT,default=5s"`
	LogLevel      string        `env:"LOG_LEVEL,default=WARN"`
}

const usage = `usage: client <command> [flags]

commands:
  list
  get     --id ID
  add     --title T --body B [--attachment URL]
  update  --id ID --title T --body B [--attachment URL]
  delete  --id ID
`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, nil
	}
	command, args := args[0], args[1:]

	flags := pflag.NewFlagSet(command, pflag.ContinueOnError)
	id := flags.String("id", "", "message id")
	title := flags.String("title", "", "message title")
	body := flags.String("body", "", "message body")
	attachment := flags.String("attachment", "", "attachment URL")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}
	payload := domain.MessagePayload{Title: *title, Body: *body, AttachmentURL: *attachment}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	conn, err := grpc2.NewClient(config.ServerAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()
	client := grpc2.NewMessageServiceClient(conn)

	var messages []domain.Message
	switch command {
	case "list":
		resp, err := client.ListMessages(ctx, &wire.Empty{})
		if err != nil {
			return exitRuntime, err
		}
		messages = resp.Messages
	case "get":
		resp, err := client.GetMessage(ctx, &wire.MessageRequest{ID: *id})
		if err != nil {
			return exitRuntime, err
		}
		messages = []domain.Message{resp.Message}
	case "add":
		resp, err := client.AddMessage(ctx, &wire.AddMessageRequest{Payload: payload})
		if err != nil {
			return exitRuntime, err
		}
		messages = []domain.Message{resp.Message}
	case "update":
		resp, err := client.UpdateMessage(ctx, &wire.UpdateMessageRequest{ID: *id, Payload: payload})
		if err != nil {
			return exitRuntime, err
		}
		messages = []domain.Message{resp.Message}
	case "delete":
		resp, err := client.DeleteMessage(ctx, &wire.MessageRequest{ID: *id})
		if err != nil {
			return exitRuntime, err
		}
		messages = []domain.Message{resp.Message}
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, fmt.Errorf("unknown command %q", command)
	}

	internal.RenderMessages(os.Stdout, messages)
	return exitOK, nil
}
