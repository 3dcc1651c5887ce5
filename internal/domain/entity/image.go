package entity

import "io"

// ImageSource archivo de imagen elegido en el formulario, aún sin convertir.
// Open puede llamarse desde otra goroutine.
type ImageSource struct {
	Name string
	Open func() (io.ReadCloser, error)
}
