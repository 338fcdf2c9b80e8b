package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"zadachnik/pdf"
)

const outputDir = "generated_pdfs"

func main() {
	if path := os.Getenv("WKHTMLTOPDF_PATH"); path != "" {
		wkhtmltopdf.SetPath(path)
	}

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "=== Генератор PDF из CSV и HTML-шаблона ===")

	csvFiles, err := pdf.FindFiles(".", ".csv")
	if err != nil {
		log.Fatalf("Failed to scan for CSV files: %v", err)
	}
	csvPath, ok := pdf.SelectFile(in, out, csvFiles, "CSV")
	if !ok {
		return
	}

	htmlFiles, err := pdf.FindFiles(".", ".html")
	if err != nil {
		log.Fatalf("Failed to scan for HTML templates: %v", err)
	}
	templatePath, ok := pdf.SelectFile(in, out, htmlFiles, "HTML")
	if !ok {
		return
	}

	encoding, ok := pdf.SelectEncoding(in, out)
	if !ok {
		return
	}

	header, rows, err := pdf.ReadRows(csvPath, encoding)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", csvPath, err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "❌ В CSV-файле нет ни одной строки данных.")
		os.Exit(1)
	}

	template, err := pdf.DecodeFile(templatePath, encoding)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", templatePath, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", outputDir, err)
	}

	fmt.Fprintf(out, "\n🚀 Генерация %d PDF-файлов в %s/...\n\n", len(rows), outputDir)
	batch := &pdf.Batch{Template: template, OutDir: outputDir, Out: out}
	res := batch.Run(header, rows)

	fmt.Fprintf(out, "\n=== Готово: успешно %d, с ошибками %d ===\n", res.Succeeded, res.Failed)

	if res.FirstPDF != "" {
		if err := pdf.OpenDocument(res.FirstPDF); err != nil {
			fmt.Fprintf(out, "Не удалось открыть %s: %v\n", res.FirstPDF, err)
		}
	}
	if res.Failed > 0 && res.Succeeded == 0 {
		os.Exit(1)
	}
}
