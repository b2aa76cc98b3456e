// invoice procesa archivos CSV de clientes y crea y envía las facturas
// correspondientes a través del API de Billogram.
//
// Uso: invoice [flags] FILE [FILE...]
// Las credenciales se leen de config.toml (flag --config para otra ruta).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appbilling "github.com/tu-usuario/billogram-batch/internal/application/billing"
	infrabillogram "github.com/tu-usuario/billogram-batch/internal/infrastructure/billogram"
	"github.com/tu-usuario/billogram-batch/internal/infrastructure/csvsource"
	"github.com/tu-usuario/billogram-batch/pkg/config"
	"github.com/tu-usuario/billogram-batch/pkg/logger"
)

var (
	cfgPath       string
	skipCustomers bool
	dryRun        bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "invoice [flags] FILE [FILE...]",
	Short: "Crea y envía facturas en Billogram a partir de archivos CSV",
	Long: `invoice lee archivos CSV de clientes (una fila de datos = una factura),
crea cada factura en Billogram y ordena su envío por email, SMS o carta según
los datos de contacto. Los fallos de una fila se reportan y no detienen la
corrida; solo la configuración o un archivo ilegible la abortan.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "config.toml", "ruta del archivo de configuración")
	rootCmd.Flags().BoolVar(&skipCustomers, "skip-customers", false, "no registrar clientes antes de facturar")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "mapear y validar sin llamar al API")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log de nivel debug")
}

func run(ctx context.Context, files []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.Log.Env, Level: level})

	reader, err := csvsource.NewReader(cfg.CSV)
	if err != nil {
		return err
	}
	gateway := infrabillogram.NewClient(cfg.API, cfg.Credentials)
	uc := appbilling.NewSubmitInvoicesUseCase(reader, gateway, appbilling.Options{
		SkipCustomers: skipCustomers,
		DryRun:        dryRun,
		FallbackTitle: cfg.Invoice.FallbackTitle,
	}, log)

	// Archivos en secuencia, filas en secuencia: una llamada a la vez.
	for _, file := range files {
		report, err := uc.SubmitFile(ctx, file)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d filas, %d enviadas, %d con fallo\n",
			file, len(report.Rows), report.Sent(), report.FailedCount())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
