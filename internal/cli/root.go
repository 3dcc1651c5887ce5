// Package cli comandos de catalogctl para operar el slot del catálogo sin levantar la API.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-infantil/internal/application/catalog"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-infantil/pkg/config"
	"github.com/jhoicas/tienda-infantil/pkg/logger"
)

// NewRootCmd construye el comando raíz con todos los subcomandos.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Administración del catálogo de la tienda infantil",
		Long: `catalogctl opera directamente sobre el slot durable del catálogo
(bolt, postgres, redis) usando la misma configuración que la API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env opcional
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newPDFCmd())

	return cmd
}

// session catálogo cargado desde el slot configurado.
type session struct {
	cfg   *config.Config
	store *catalog.Store
	slot  *storage.Slot
}

func (s *session) Close() error { return s.slot.Close() }

// openSession carga configuración, abre el slot e inicializa el catálogo.
// Los logs van a stderr para no mezclarse con la salida de export.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	slot, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(slot, catalog.Options{
		SlotKey:        cfg.Storage.SlotKey,
		StrictNotFound: cfg.Catalog.StrictNotFound,
	}, log.Zerolog())
	store.Initialize(ctx)

	return &session{cfg: cfg, store: store, slot: slot}, nil
}
