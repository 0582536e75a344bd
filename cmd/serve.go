package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice website",
	Long: `Starts a local HTTP server for the practice site on port 8000 (or
$PORT). Serves the static front-end, the consolidated question data
under /data/, and a JSON subject listing at /api/subjects. Responses
are sent with caching disabled so data edits show up on refresh.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Use PORT env variable if set (container environments)
	if envPort := os.Getenv("PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", &servePort)
	}

	srv, err := server.New(server.Config{
		SiteDir: cfg.SiteDir,
		DataDir: cfg.SiteDataDir,
	})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	subjects, err := srv.Subjects()
	if err != nil {
		return fmt.Errorf("read site data: %w", err)
	}

	display.PrintBanner(display.ServerInfo{
		SubjectCount:  len(subjects),
		QuestionCount: srv.QuestionCount(),
		SiteDir:       cfg.SiteDir,
		DataDir:       cfg.SiteDataDir,
		Port:          servePort,
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", servePort),
		Handler: srv.Handler(),
	}
	return httpServer.ListenAndServe()
}
