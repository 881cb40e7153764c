package out

import (
	"fmt"
	"os"
	"path/filepath"

	backupout "switchsprint/internal/modules/backup/port/out"
	"switchsprint/internal/platform/fsutil"
)

// OSFolder writes backups into a local directory, typically one synced by a
// cloud drive client.
type OSFolder struct{}

func NewOSFolder() backupout.Folder {
	return OSFolder{}
}

func (OSFolder) Check(dir string) error {
	return fsutil.ProbeWritable(dir)
}

func (OSFolder) Write(dir, name string, payload []byte) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid backup file name %q", name)
	}
	return fsutil.WriteFileAtomic(filepath.Join(dir, name), payload, 0o644)
}

func (OSFolder) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
