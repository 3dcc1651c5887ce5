package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domaincatalog "github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/pdf"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reemplaza el catálogo guardado por el catálogo inicial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			seed := domaincatalog.SeedProducts()
			if err := s.store.Replace(cmd.Context(), seed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catálogo inicial guardado: %d productos\n", len(seed))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los productos del catálogo",
		Example: `  catalogctl list
  catalogctl list --category Niñas
  catalogctl list --category Pantalones`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			products := domaincatalog.Filter(s.store.List(), selection)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tSUBCATEGORÍA\tTALLA\tPRECIO\tCANT.")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
					p.ID, p.Name, p.Category, p.Subcategory, p.Size, p.PriceLabel(), p.Quantity)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos (%s)\n", len(products), selection)
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "category", "c", domaincatalog.ShowAll, "Todos, categoría principal o subcategoría")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Escribe el catálogo completo como JSON en stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s.store.List())
		},
	}
}

func newPDFCmd() *cobra.Command {
	var (
		selection string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Genera el catálogo imprimible en PDF",
		Example: `  catalogctl pdf --out catalogo.pdf
  catalogctl pdf --category Bebé --out bebe.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			products := domaincatalog.Filter(s.store.List(), selection)
			data, err := pdf.NewCatalogPDFGenerator(s.cfg.App.Name).GenerateCatalogPDF(cmd.Context(), selection, products)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productos\n", out, len(products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "category", "c", domaincatalog.ShowAll, "Todos, categoría principal o subcategoría")
	cmd.Flags().StringVarP(&out, "out", "o", "catalogo.pdf", "Archivo de salida")
	return cmd
}
