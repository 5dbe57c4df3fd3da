package reconciler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/engine/reconciler"
)

func TestResolveRequests(t *testing.T) {
	tests := []struct {
		name    string
		in      reconciler.RequestInput
		want    []domain.ModuleRequest
		wantErr string
	}{
		{
			name: "module list keeps order",
			in:   reconciler.RequestInput{Modules: []string{"Pester", "Az.Accounts", "PSReadLine"}},
			want: []domain.ModuleRequest{
				{Name: "Pester"},
				{Name: "Az.Accounts"},
				{Name: "PSReadLine"},
			},
		},
		{
			name: "duplicates collapse case-insensitively",
			in:   reconciler.RequestInput{Modules: []string{"Pester", "pester", "PESTER"}},
			want: []domain.ModuleRequest{{Name: "Pester"}},
		},
		{
			name: "pinned map sorted by name",
			in: reconciler.RequestInput{Pinned: map[string]string{
				"PSReadLine":  "2.3.4",
				"az.accounts": "",
				"Pester":      "5.5.0",
			}},
			want: []domain.ModuleRequest{
				{Name: "az.accounts"},
				{Name: "Pester", DesiredVersion: "5.5.0"},
				{Name: "PSReadLine", DesiredVersion: "2.3.4"},
			},
		},
		{
			name: "update existing appends installed names",
			in: reconciler.RequestInput{
				Modules:        []string{"Pester"},
				UpdateExisting: true,
				Installed:      []string{"platyPS", "pester", "Az.Accounts"},
			},
			want: []domain.ModuleRequest{
				{Name: "Pester", TreatAsRegistry: true},
				{Name: "Az.Accounts"},
				{Name: "platyPS"},
			},
		},
		{
			name: "update existing never overrides pins",
			in: reconciler.RequestInput{
				Pinned:         map[string]string{"Pester": "4.10.1"},
				UpdateExisting: true,
				Installed:      []string{"Pester", "PSScriptAnalyzer"},
			},
			want: []domain.ModuleRequest{
				{Name: "Pester", DesiredVersion: "4.10.1", TreatAsRegistry: true},
				{Name: "PSScriptAnalyzer"},
			},
		},
		{
			name: "update existing alone",
			in:   reconciler.RequestInput{UpdateExisting: true, Installed: []string{"b", "A"}},
			want: []domain.ModuleRequest{{Name: "A"}, {Name: "b"}},
		},
		{
			name: "update existing with nothing installed",
			in:   reconciler.RequestInput{UpdateExisting: true},
			want: []domain.ModuleRequest{},
		},
		{
			name: "installed names ignored without update existing",
			in:   reconciler.RequestInput{Modules: []string{"Pester"}, Installed: []string{"Other"}},
			want: []domain.ModuleRequest{{Name: "Pester"}},
		},
		{
			name:    "no targets",
			in:      reconciler.RequestInput{},
			wantErr: "no modules specified",
		},
		{
			name: "list and pins conflict",
			in: reconciler.RequestInput{
				Modules: []string{"Pester"},
				Pinned:  map[string]string{"Pester": "5.5.0"},
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "invalid name",
			in:      reconciler.RequestInput{Modules: []string{"../evil"}},
			wantErr: "invalid module name",
		},
		{
			name:    "invalid pinned version",
			in:      reconciler.RequestInput{Pinned: map[string]string{"Pester": "../5.5.0"}},
			wantErr: "invalid module version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reconciler.ResolveRequests(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
