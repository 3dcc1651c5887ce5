// Package imaging convierte imágenes subidas en data URIs autocontenidos
// ("data:image/png;base64,...") para guardarlas junto al producto.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-infantil/internal/application/form"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

var _ form.ImageEncoder = (*DataURIEncoder)(nil)

// Valores por defecto del codificador.
const (
	DefaultMaxBytes    = 10 * 1024 * 1024
	DefaultMaxParallel = 4
)

// DataURIEncoder implementa form.ImageEncoder.
type DataURIEncoder struct {
	maxBytes    int64
	maxParallel int
}

// NewDataURIEncoder construye el codificador. Valores <= 0 usan los por defecto.
func NewDataURIEncoder(maxBytes int64, maxParallel int) *DataURIEncoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &DataURIEncoder{maxBytes: maxBytes, maxParallel: maxParallel}
}

// EncodeAll convierte todas las imágenes en paralelo. El lote termina cuando todas terminan,
// o falla con el primer error; en ese caso no devuelve resultados.
func (e *DataURIEncoder) EncodeAll(ctx context.Context, sources []entity.ImageSource) ([]string, error) {
	urls := make([]string, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxParallel)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u, err := e.Encode(src)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// Encode lee una imagen y devuelve su data URI. El tipo MIME se detecta por contenido
// y debe ser image/*.
func (e *DataURIEncoder) Encode(src entity.ImageSource) (string, error) {
	if src.Open == nil {
		return "", fmt.Errorf("imagen %q: sin contenido", src.Name)
	}
	rc, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("imagen %q: abrir: %w", src.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, e.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("imagen %q: leer: %w", src.Name, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("imagen %q: archivo vacío", src.Name)
	}
	if int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("imagen %q: supera el máximo de %d bytes", src.Name, e.maxBytes)
	}

	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("imagen %q: tipo %s no soportado", src.Name, mime)
	}
	return DataURI(mime, data), nil
}

// DataURI arma "data:<mime>;base64,<datos>".
func DataURI(mime string, data []byte) string {
	var b bytes.Buffer
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}
