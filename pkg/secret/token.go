package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// EncryptedPrefix marca tokens cifrados pela camada do bot
const EncryptedPrefix = "enc:"

const keySize = 32

var (
	ErrKeyNotConfigured = errors.New("chave de criptografia não configurada")
	ErrInvalidKey       = errors.New("chave de criptografia inválida")
	ErrMalformedToken   = errors.New("token cifrado malformado")
)

// TokenCipher decifra os tokens do marketplace armazenados como enc:<base64(nonce+ciphertext)>
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher aceita a chave em base64; chave vazia gera um cipher que só aceita texto puro
func NewTokenCipher(encodedKey string) (*TokenCipher, error) {
	if encodedKey == "" {
		return &TokenCipher{}, nil
	}

	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil || len(key) != keySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return &TokenCipher{aead: aead}, nil
}

func (c *TokenCipher) Enabled() bool {
	return c.aead != nil
}

func IsEncrypted(token string) bool {
	return strings.HasPrefix(token, EncryptedPrefix)
}

// Decrypt devolve tokens sem prefixo inalterados
func (c *TokenCipher) Decrypt(token string) (string, error) {
	if !IsEncrypted(token) {
		return token, nil
	}
	if c.aead == nil {
		return "", ErrKeyNotConfigured
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(token, EncryptedPrefix))
	if err != nil {
		return "", ErrMalformedToken
	}

	nonceSize := c.aead.NonceSize()
	if len(data) <= nonceSize {
		return "", ErrMalformedToken
	}

	plaintext, err := c.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", ErrMalformedToken
	}

	return string(plaintext), nil
}

func (c *TokenCipher) Encrypt(token string) (string, error) {
	if c.aead == nil {
		return "", ErrKeyNotConfigured
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(token), nil)
	return EncryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}
