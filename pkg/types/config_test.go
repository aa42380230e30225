package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataFile: "/tmp/file.json"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataFile: "/tmp/file.json"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid json config",
			config:  Config{Backend: BackendJSON, DataFile: "/tmp/file.json"},
			wantErr: nil,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, DataFile: "/tmp/file.db"},
			wantErr: nil,
		},
		{
			name:    "empty DataFile is valid at config level",
			config:  Config{Backend: BackendJSON, DataFile: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		config Config
		want   string
	}{
		{Config{Backend: BackendJSON}, DefaultDataFile},
		{Config{Backend: BackendSQLite}, DefaultSQLiteFile},
		{Config{Backend: BackendSQLite, DataFile: "/data/objects.db"}, "/data/objects.db"},
	}
	for _, tt := range tests {
		if got := tt.config.Path(); got != tt.want {
			t.Errorf("Path() for %+v = %q, want %q", tt.config, got, tt.want)
		}
	}
}
