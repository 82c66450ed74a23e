package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/leads"
	"github.com/ziadkadry99/site-assist/internal/pipeline"
	"github.com/ziadkadry99/site-assist/internal/server"
)

var (
	serverPort     int
	serverAllowAll bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the assistant HTTP server",
	Long:  `Starts the siteassist HTTP server with the chat API, WebSocket endpoint, knowledge catalog API, and lead export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		deps, err := buildAssistant(cfg, true)
		if err != nil {
			return err
		}
		defer deps.database.Close()

		port := serverPort
		if port == 0 {
			port = cfg.Server.Port
		}
		srv := server.New(server.Config{
			Port:     port,
			AllowAll: serverAllowAll || cfg.Server.AllowAll,
		})

		r := srv.Router()
		pipeline.RegisterRoutes(r, deps.pipe)
		pipeline.RegisterWebSocket(r, deps.pipe)
		knowledge.RegisterRoutes(r, deps.index, cfg.DefaultLanguage)
		leads.RegisterRoutes(r, deps.leads)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "siteassist server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		fmt.Fprintf(os.Stderr, "  Knowledge items: %d\n", deps.index.Len())

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	serverCmd.Flags().BoolVar(&serverAllowAll, "allow-all-origins", false, "Allow all CORS origins")
	rootCmd.AddCommand(serverCmd)
}
