// Package artifact turns a built firmware ELF into the deployable image
// set and the supporting reports that ship with it.
//
// Checksums use a prefixed format: "algorithm:hexvalue"
// (e.g. "sha256:c0ffee12...", "adler32:babe1337").
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"io"
	"os"
	"strings"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm int

const (
	ChecksumSHA256 ChecksumAlgorithm = iota
	ChecksumAdler32
)

func (c ChecksumAlgorithm) String() string {
	switch c {
	case ChecksumSHA256:
		return "sha256"
	case ChecksumAdler32:
		return "adler32"
	default:
		return "unknown"
	}
}

func (c ChecksumAlgorithm) hasher() hash.Hash {
	switch c {
	case ChecksumAdler32:
		return adler32.New()
	default:
		return sha256.New()
	}
}

// Checksum calculates the prefixed checksum of data.
func Checksum(data []byte, algorithm ChecksumAlgorithm) string {
	h := algorithm.hasher()
	h.Write(data)
	return algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil))
}

// ChecksumFile calculates the prefixed checksum of a file, streaming so
// large images do not load into memory.
func ChecksumFile(path string, algorithm ChecksumAlgorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("checksumming %s: %w", path, err)
	}
	defer f.Close()

	h := algorithm.hasher()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("checksumming %s: %w", path, err)
	}
	return algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil)), nil
}

// ParseChecksum splits a prefixed checksum into algorithm and hex value.
func ParseChecksum(checksumStr string) (ChecksumAlgorithm, string, error) {
	algoName, hexValue, found := strings.Cut(checksumStr, ":")
	if !found {
		return ChecksumSHA256, "", fmt.Errorf("invalid checksum format: %s", checksumStr)
	}

	switch algoName {
	case "sha256":
		return ChecksumSHA256, hexValue, nil
	case "adler32":
		return ChecksumAdler32, hexValue, nil
	default:
		return ChecksumSHA256, "", fmt.Errorf("unknown checksum algorithm: %s", algoName)
	}
}

// VerifyFile recomputes a file's checksum and compares it against the
// expected prefixed value.
func VerifyFile(path, expected string) (bool, error) {
	algo, expectedHex, err := ParseChecksum(expected)
	if err != nil {
		return false, err
	}

	actual, err := ChecksumFile(path, algo)
	if err != nil {
		return false, err
	}
	_, actualHex, _ := strings.Cut(actual, ":")
	return actualHex == expectedHex, nil
}
