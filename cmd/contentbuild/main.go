// contentbuild bundles the per-item content records under content/ into the
// data artifacts the storefront serves, plus the sitemap. Invoked with no
// arguments; paths and toggles come from the environment.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/riplures/internal/content"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("SKIP_CONTENT_BUILD") == "true" {
		log.Println("[content] SKIP_CONTENT_BUILD set — nothing to do")
		return
	}

	paths := content.DefaultPaths(
		getEnv("CONTENT_DIR", "content"),
		getEnv("DATA_DIR", "data"),
		getEnv("PUBLIC_DIR", "public"),
		getEnv("SITE_URL", "http://localhost:5173"),
	)

	if err := content.BuildAll(paths); err != nil {
		log.Fatalf("content build failed: %v", err)
	}

	if os.Getenv("WATCH_CONTENT") != "true" {
		return
	}

	watcher, err := content.NewWatcher(paths, nil)
	if err != nil {
		log.Fatalf("content watcher: %v", err)
	}
	if err := watcher.Start(); err != nil {
		log.Fatalf("content watcher: %v", err)
	}
	log.Println("[content] watching for content changes — Ctrl-C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err := watcher.Stop(); err != nil {
		log.Printf("[content] watcher stop: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
