package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// fingerprintLength is the number of hex characters kept from the digest.
const fingerprintLength = 32

// MachineFingerprint derives a reinstall-resistant fingerprint from the OS machine id,
// the hostname and the platform. Removing the local state does not change it.
type MachineFingerprint struct {
	machineIDPaths []string
	hostname       func() (string, error)
	readFile       func(string) ([]byte, error)
}

// NewMachineFingerprint probes machineIDPaths in order for a machine identifier
func NewMachineFingerprint(machineIDPaths []string) *MachineFingerprint {
	return &MachineFingerprint{
		machineIDPaths: machineIDPaths,
		hostname:       os.Hostname,
		readFile:       os.ReadFile,
	}
}

// Fingerprint returns 32 hex characters. It fails only when no source yields anything.
func (f *MachineFingerprint) Fingerprint(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	machineID := f.machineID()
	hostname, _ := f.hostname()
	if machineID == "" && hostname == "" {
		return "", errors.New("no machine id or hostname available")
	}

	sum := sha256.Sum256([]byte(strings.Join([]string{machineID, hostname, runtime.GOOS, runtime.GOARCH}, "|")))

	return hex.EncodeToString(sum[:])[:fingerprintLength], nil
}

func (f *MachineFingerprint) machineID() string {
	for _, path := range f.machineIDPaths {
		data, err := f.readFile(path)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	return ""
}
