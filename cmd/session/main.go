// Command session boots the client core from the app config and prints the
// restored session.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/client"
	"github.com/kravdojo/gym-api/internal/config"
	"github.com/kravdojo/gym-api/internal/logger"
)

const configPath = "./cmd/app/config.yml"

var errNoSessionConfig = errors.New("config has no session section")

func main() {
	conf, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Errorf("failed to initialize config -> %w", err))
	}
	if err = logger.Init(conf.API.Environment); err != nil {
		panic(fmt.Errorf("failed to initialize logger -> %w", err))
	}

	if err = run(context.Background(), conf, os.Stdout); err != nil {
		zap.L().Error("session check failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.AppConfig, w io.Writer) error {
	if conf.Session == nil {
		return errNoSessionConfig
	}

	core, err := client.New(ctx, conf.Session, conf.Redis, zap.L())
	if err != nil {
		return fmt.Errorf("client.New -> %w", err)
	}
	defer core.Close()

	snap := core.Session.Snapshot()
	fmt.Fprintf(w, "backend: %s\n", backendName(conf.Session.Backend))
	fmt.Fprintf(w, "state: %s\n", snap.State)
	if snap.Member != nil {
		fmt.Fprintf(w, "member: %s <%s> (%s)\n", snap.Member.Name(), snap.Member.Email(), snap.Member.Kind)
	}
	fmt.Fprintf(w, "products: %d\n", len(core.Products.State().Products))

	return nil
}

func backendName(b string) string {
	if b == "" {
		return client.BackendMemory
	}
	return b
}
