// internal/armazenamento/armazenamento.go
package armazenamento

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Armazenamento guarda documentos enviados (recibos, comprovativos) em disco
// debaixo de uma diretoria base. Os nomes são UUIDs para nunca colidirem nem
// expor o nome original do ficheiro.
type Armazenamento struct {
	BaseDir string
}

// Novo cria o armazenamento, garantindo que a diretoria base existe.
func Novo(baseDir string) (*Armazenamento, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretoria de uploads: %w", err)
	}
	return &Armazenamento{BaseDir: baseDir}, nil
}

// Guardar persiste um ficheiro multipart e devolve o nome gerado
// (relativo à diretoria base), a guardar no registo.
func (a *Armazenamento) Guardar(file multipart.File, header *multipart.FileHeader, prefixo string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	nome := fmt.Sprintf("%s-%s%s", prefixo, uuid.NewString(), ext)

	destino, err := os.Create(filepath.Join(a.BaseDir, nome))
	if err != nil {
		return "", fmt.Errorf("criar ficheiro: %w", err)
	}
	defer destino.Close()

	if _, err := io.Copy(destino, file); err != nil {
		return "", fmt.Errorf("gravar ficheiro: %w", err)
	}
	return nome, nil
}

// Abrir devolve o ficheiro guardado para download. O nome vem sempre de um
// registo nosso, mas filepath.Base corta qualquer tentativa de path traversal.
func (a *Armazenamento) Abrir(nome string) (*os.File, error) {
	return os.Open(filepath.Join(a.BaseDir, filepath.Base(nome)))
}

// Remover apaga um documento guardado; ignora ficheiros já inexistentes.
func (a *Armazenamento) Remover(nome string) error {
	err := os.Remove(filepath.Join(a.BaseDir, filepath.Base(nome)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
