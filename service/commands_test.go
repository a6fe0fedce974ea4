package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func mockStdin(input string, f func()) {
	oldStdin := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	// Write input in a goroutine to avoid blocking
	go func() {
		w.Write([]byte(input))
		w.Close()
	}()

	f()

	os.Stdin = oldStdin
}

// setupTestDB points the command paths at a temp directory for the test.
func setupTestDB(t *testing.T) string {
	tmpDir := t.TempDir()
	origDbPath, origBackupDir := dbPath, backupDir
	dbPath = filepath.Join(tmpDir, "test.db")
	backupDir = filepath.Join(tmpDir, "backups")
	t.Cleanup(func() {
		dbPath = origDbPath
		backupDir = origBackupDir
	})
	return tmpDir
}

func TestHandleCommand(t *testing.T) {
	setupTestDB(t)

	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: harborlight app",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: harborlight app",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown app command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode int
			oldOsExit := osExit
			defer func() { osExit = oldOsExit }()
			osExit = func(code int) {
				exitCode = code
				panic("exit")
			}

			output := captureOutput(func() {
				defer func() {
					if r := recover(); r != nil {
						if r != "exit" {
							panic(r)
						}
					}
				}()
				HandleCommand(tt.args)
			})

			assert.Contains(t, output, tt.expectedOutput)
			if tt.expectedExit > 0 {
				assert.Equal(t, tt.expectedExit, exitCode)
			}
		})
	}
}

func TestInitDb(t *testing.T) {
	setupTestDB(t)

	t.Run("initialize new database", func(t *testing.T) {
		output := captureOutput(func() {
			initDb()
		})

		assert.Contains(t, output, "Database initialized successfully")
		assert.DirExists(t, dbPath)
	})

	t.Run("initialize existing database", func(t *testing.T) {
		output := captureOutput(func() {
			initDb()
		})

		assert.Contains(t, output, "Database already exists")
	})
}

func TestClean(t *testing.T) {
	setupTestDB(t)

	t.Run("clean non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			clean()
		})

		assert.Contains(t, output, "Database is already clean")
	})

	t.Run("clean existing database confirmed", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		var output string
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				clean()
			})
		})

		assert.Contains(t, output, "Database cleaned successfully")
		assert.NoDirExists(t, dbPath)
	})

	t.Run("clean existing database cancelled", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				clean()
			})
		})

		assert.Contains(t, output, "Operation cancelled")
		assert.DirExists(t, dbPath)
	})
}

func TestBackupAndRestore(t *testing.T) {
	setupTestDB(t)

	t.Run("backup non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			backup()
		})

		assert.Contains(t, output, "No database exists to backup")
	})

	t.Run("restore non-existent backup", func(t *testing.T) {
		output := captureOutput(func() {
			restore("nonexistent.db")
		})

		assert.Contains(t, output, "Backup file does not exist")
	})

	t.Run("backup then restore round trip", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		// Write a record so the backup stream is non-empty
		db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
		require.NoError(t, err)
		require.NoError(t, db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte("post:1"), []byte(`{"id":1}`))
		}))
		require.NoError(t, db.Close())

		output := captureOutput(func() {
			backup()
		})
		assert.Contains(t, output, "Database backed up successfully")

		entries, err := os.ReadDir(backupDir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		backupFile := filepath.Join(backupDir, entries[0].Name())

		// Existing database prompts for confirmation before replacing
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				restore(backupFile)
			})
		})
		assert.Contains(t, output, "Database restored successfully")
		assert.DirExists(t, dbPath)
	})

	t.Run("restore with existing database cancelled", func(t *testing.T) {
		entries, err := os.ReadDir(backupDir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		backupFile := filepath.Join(backupDir, entries[0].Name())

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				restore(backupFile)
			})
		})

		assert.Contains(t, output, "Operation cancelled")
	})
}
