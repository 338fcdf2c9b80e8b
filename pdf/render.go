package pdf

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// defaultStyles is injected when a template ships without its own
// stylesheet, so bare tables still render readably and Cyrillic text
// gets a font that carries it.
const defaultStyles = `
<style>
    body {
        font-family: 'DejaVu Sans', 'Arial Unicode MS', 'Arial', sans-serif;
    }
    table {
        width: 100%;
        border-collapse: collapse;
        margin: 10px 0;
    }
    th, td {
        border: 1px solid #000;
        padding: 8px;
        text-align: left;
        word-wrap: break-word;
        overflow-wrap: break-word;
    }
    th {
        background-color: #f0f0f0;
        font-weight: bold;
        text-align: center;
    }
    td {
        vertical-align: top;
    }
    tr:nth-child(even) {
        background-color: #f9f9f9;
    }
    .long-text {
        word-wrap: break-word;
        max-width: 300px;
    }
    .break-word {
        word-wrap: break-word;
        overflow-wrap: break-word;
        word-break: break-word;
        max-width: 300px;
    }
    .text-left {
        text-align: left;
    }
    .text-right {
        text-align: right;
    }
    .text-center {
        text-align: center;
    }
</style>
`

// EnsureHTMLDocument adds a UTF-8 charset meta tag and the default
// table stylesheet when the merged document lacks them.
func EnsureHTMLDocument(html string) string {
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "<meta charset") && !strings.Contains(lower, "<meta http-equiv") {
		if strings.Contains(html, "<head>") {
			html = strings.Replace(html, "<head>", "<head>\n<meta charset=\"UTF-8\">", 1)
		} else {
			html = "<head>\n<meta charset=\"UTF-8\">\n</head>\n" + html
		}
	}

	if !strings.Contains(strings.ToLower(html), "<style") {
		switch {
		case strings.Contains(html, "</head>"):
			html = strings.Replace(html, "</head>", defaultStyles+"</head>", 1)
		case strings.Contains(html, "<body"):
			html = strings.Replace(html, "<body>", "<head>"+defaultStyles+"</head>\n<body>", 1)
		default:
			html = "<head>" + defaultStyles + "</head>\n" + html
		}
	}
	return html
}

// RenderPDF converts one merged HTML document into a PDF at outPath.
func RenderPDF(html, outPath string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("initializing wkhtmltopdf: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(EnsureHTMLDocument(html)))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	if err := pdfg.WriteFile(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// OpenDocument opens path with the platform's default viewer.
func OpenDocument(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
