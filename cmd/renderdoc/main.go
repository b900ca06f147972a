// renderdoc renders a stored document to a PDF file from the command line,
// using the same composition and renderer as the API's export pipeline.
// Useful for reprints and for checking a template change against real data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain/render"
	infrapdf "github.com/billora/billora-api/internal/infrastructure/pdf"
	"github.com/billora/billora-api/internal/infrastructure/postgres"
	"github.com/billora/billora-api/pkg/config"
	"github.com/billora/billora-api/pkg/logger"
)

var (
	flagTarget string
	flagOut    string
)

var rootCmd = &cobra.Command{
	Use:   "renderdoc <document-id>",
	Short: "Render a stored invoice or quotation to a PDF file",
	Example: `  # Download-quality PDF next to the working directory
  renderdoc INV-00042

  # Print profile written to an explicit path
  renderdoc QUO-00007 --target print --out /tmp/quote.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection: %w", err)
	}
	defer pool.Close()

	documentID := args[0]
	exportUC := billing.NewExportUseCase(
		postgres.NewDocumentRepository(pool, postgres.NewTxRunner(pool)),
		postgres.NewCompanyRepository(pool),
		infrapdf.NewMarotoRenderer(cfg.Billing.TemplatePath),
		log,
	)

	artifact, err := exportUC.Export(ctx, documentID, flagTarget)
	if err != nil {
		return err
	}

	out := flagOut
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.Bytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%d bytes, %s profile)\n", out, len(artifact.Bytes), render.ProfileFor(flagTarget).Name)
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&flagTarget, "target", "t", "download", "scale profile: preview, print or download")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output path (defaults to <kind>-<id>.pdf)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
