// Package jsonstore implementa los puertos de persistencia sobre documentos
// JSON planos, uno por colección. Cada repositorio serializa sus accesos con
// un mutex propio y escribe de forma atómica (archivo temporal + rename), de
// modo que dos mutaciones concurrentes nunca se pisan ni dejan un archivo a
// medio escribir visible para los lectores.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// readCollection lee y decodifica el archivo de la colección en dst.
// Un archivo inexistente equivale a una colección vacía.
func readCollection(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", path, err)
	}
	return nil
}

// writeCollection serializa la colección y la escribe de forma atómica:
// primero a un temporal en el mismo directorio, luego rename sobre el destino.
func writeCollection(path string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal de %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar %s: %w", path, err)
	}
	return nil
}
