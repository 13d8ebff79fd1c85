package storage

import (
	"encoding/hex"
	"fmt"
	"os"

	"go.dedis.ch/kyber/v4/suites"
)

var suite = suites.MustFind("Ed25519")

// Fingerprint hashes the serialised image of a with the suite hash.
func Fingerprint(a BitArray) ([]byte, error) {
	h := suite.Hash()
	if err := Dump(h, a); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// WriteFingerprint stores the hex fingerprint of a next to its dump, in
// path + ".sum", and returns it.
func WriteFingerprint(path string, a BitArray) (string, error) {
	sum, err := Fingerprint(a)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint %s: %w", path, err)
	}
	digest := hex.EncodeToString(sum)
	if err := os.WriteFile(path+".sum", []byte(digest+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fingerprint: %w", err)
	}
	return digest, nil
}
