package pdf

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FindFiles walks root recursively and returns every file whose
// extension matches ext (case-insensitive), sorted lexicographically.
func FindFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// SelectFile runs the numbered 1..N / 0-to-cancel prompt. Invalid input
// reprompts; EOF on stdin cancels.
func SelectFile(in *bufio.Reader, out io.Writer, files []string, kind string) (string, bool) {
	if len(files) == 0 {
		fmt.Fprintf(out, "\n❌ %s-файлы не найдены в текущей директории и поддиректориях.\n", kind)
		return "", false
	}

	fmt.Fprintf(out, "\n📁 Найдено %s-файлов: %d\n", kind, len(files))
	fmt.Fprintln(out, strings.Repeat("-", 70))
	wd, _ := os.Getwd()
	for i, f := range files {
		rel, err := filepath.Rel(wd, f)
		if err != nil {
			rel = f
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, rel)
	}
	fmt.Fprintln(out, strings.Repeat("-", 70))
	fmt.Fprintln(out, "0. Отмена")

	for {
		fmt.Fprintf(out, "\nВыбери %s-файл (1-%d или 0 для отмены): ", kind, len(files))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out, "\nОперация отменена.")
			return "", false
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(out, "⚠ Введи корректное число.")
			continue
		}
		if n == 0 {
			return "", false
		}
		if n >= 1 && n <= len(files) {
			fmt.Fprintf(out, "✓ Выбран: %s\n", files[n-1])
			return files[n-1], true
		}
		fmt.Fprintf(out, "⚠ Неверный выбор. Введи число от 1 до %d или 0 для отмены.\n", len(files))
	}
}

// SelectEncoding asks which encoding to read the input files with.
// Empty input keeps the UTF-8 default.
func SelectEncoding(in *bufio.Reader, out io.Writer) (string, bool) {
	for {
		fmt.Fprintf(out, "\nКодировка файлов: 1. %s (по умолчанию)  2. %s\nВыбери кодировку (Enter — по умолчанию): ", EncodingUTF8, EncodingWindows1251)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		switch strings.TrimSpace(line) {
		case "", "1":
			return EncodingUTF8, true
		case "2":
			return EncodingWindows1251, true
		}
		fmt.Fprintln(out, "⚠ Введи 1 или 2.")
	}
}

var (
	invalidFileChars = `<>:"/\|?*`
	whitespaceRx     = regexp.MustCompile(`\s+`)
)

// OutputFileName sanitizes the first field of a row into a PDF name.
// The row index suffix keeps names unique even when two rows share a
// sanitized base.
func OutputFileName(base string, idx int) string {
	var sb strings.Builder
	for _, r := range base {
		if strings.ContainsRune(invalidFileChars, r) {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(r)
		}
	}

	name := strings.TrimSpace(whitespaceRx.ReplaceAllString(sb.String(), " "))
	if runes := []rune(name); len(runes) > 200 {
		name = string(runes[:200])
	}
	if name == "" {
		name = fmt.Sprintf("record_%d", idx)
	}
	return fmt.Sprintf("%s_%d.pdf", name, idx)
}
