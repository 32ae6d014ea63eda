// import_products da de alta productos desde una planilla CSV (nome;preço;quantidade;descrição)
// en el store configurado. Acepta archivos UTF-8 o ISO-8859-1.
//
// Uso: go run ./cmd/import_products [ruta/produtos.csv]
// Por defecto lee produtos.csv en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/controle-vendas/internal/application/catalog"
	"github.com/jhoicas/controle-vendas/internal/application/usecase"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/storage"
	"github.com/jhoicas/controle-vendas/pkg/config"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

func main() {
	csvPath := "produtos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	backend, closeBackend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir store: %v\n", err)
		os.Exit(1)
	}
	defer closeBackend()

	st := catalog.New(ctx, backend, log)
	uc := usecase.NewProductUseCase(st, cfg.Sales.LowStockThreshold, log)

	res, err := uc.ImportProducts(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}
	for _, row := range res.Errors {
		fmt.Fprintf(os.Stderr, "línea %d (%s): %v\n", row.Line, row.Name, row.Reasons)
	}
	fmt.Printf("Importados: %d productos (%d con errores) desde %s\n", res.Created, len(res.Errors), csvPath)
}
