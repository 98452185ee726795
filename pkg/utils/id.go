package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um id alfanumérico, seguro para URLs e nomes de arquivo
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
