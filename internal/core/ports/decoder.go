package ports

import (
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/core/domain"
)

// Decoder turns raw input bytes into a String.
//
//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type Decoder interface {
	Decode(data []byte, enc domain.Encoding) (string16.String, error)
}
