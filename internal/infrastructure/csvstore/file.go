// Package csvstore implementa los puertos de repositorio sobre archivos
// planos delimitados por comas: una línea de cabecera seguida de una línea
// por entidad.
//
// El formato es un split ingenuo por comas, sin comillas ni escapes
// (no es RFC 4180): los campos no pueden contener comas y los campos vacíos
// al final de la línea se conservan.
package csvstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// fieldSep separador de campos de todos los archivos.
const fieldSep = ","

// readDataLines abre el archivo, descarta la línea de cabecera (sin
// validarla) y devuelve las líneas de datos no vacías. Un archivo
// inexistente no es un error: devuelve nil para el arranque inicial.
func readDataLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		if first {
			first = false // cabecera
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return lines, nil
}

// writeLines escribe cabecera y filas truncando el archivo. Sin recuperación
// de escrituras parciales: ante un error el llamador debe asumir el archivo
// en estado desconocido y la memoria como fuente de verdad.
func writeLines(path, header string, rows []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(header + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	for _, row := range rows {
		if _, err := w.WriteString(row + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("escribir %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}
	return nil
}

// splitFields separa una línea conservando los campos vacíos finales.
func splitFields(line string) []string {
	return strings.Split(line, fieldSep)
}

// parseInt envuelve strconv.Atoi con el nombre del campo para el mensaje.
func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return n, nil
}
