package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Vincenthsiehisme/Shopify-translate/internal/config"
	"github.com/Vincenthsiehisme/Shopify-translate/internal/pipeline"
)

// Output files are stamped with a short numeric date token, e.g. 0901 or
// 20260901.
var dateTokenPattern = regexp.MustCompile(`^\d{4,8}$`)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "order export path (.csv or .xlsx)")
		out := fs.String("out", "", "output xlsx path (default OUTPUT_DIR/orders-<date>.xlsx)")
		date := fs.String("date", "", "date token for the output filename, 4-8 digits (default today MMDD)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		token := strings.TrimSpace(*date)
		if token == "" {
			token = time.Now().Format("0102")
		}
		if !dateTokenPattern.MatchString(token) {
			must(fmt.Errorf("invalid date token %q: expected 4-8 digits", token))
		}

		outputPath := strings.TrimSpace(*out)
		if outputPath == "" {
			outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("orders-%s.xlsx", token))
		}

		svc := pipeline.NewConversionService(cfg)
		result, err := svc.ConvertFile(*input, outputPath)
		must(err)
		fmt.Printf("run done orders=%d items=%d shippingFees=%d output=%s\n",
			len(result.Orders), result.ItemCount, result.AddonCount, outputPath)
	case "inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "order export path (.csv or .xlsx)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		rows, err := pipeline.ReadOrderRows(*input)
		must(err)
		result := pipeline.NewConversionService(cfg).Convert(rows)
		for _, order := range result.Orders {
			note := ""
			for _, item := range order.Items {
				if item.Addon {
					note = " +shippingFee"
				}
			}
			fmt.Printf("%s items=%d subtotal=%s%s\n", order.ID, len(order.Items), order.Subtotal.String(), note)
		}
		fmt.Printf("inspect done orders=%d items=%d\n", len(result.Orders), result.ItemCount)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: translate <command>")
	fmt.Println("commands:")
	fmt.Println("  run --input=orders.csv [--out=./out/result.xlsx] [--date=0901]")
	fmt.Println("  inspect --input=orders.csv")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
