package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modup/internal/core/domain"
)

func TestVersionsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "1.2.3", b: "1.2.3", want: true},
		{name: "padded segments", a: "1.0", b: "1.0.0", want: true},
		{name: "different patch", a: "1.0.1", b: "1.0.0", want: false},
		{name: "prerelease differs", a: "2.0.0-beta1", b: "2.0.0", want: false},
		{name: "unparsable case-insensitive", a: "Nightly", b: "nightly", want: true},
		{name: "unparsable vs parsable", a: "nightly", b: "1.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.VersionsEqual(tt.a, tt.b))
		})
	}
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, 1, domain.CompareVersions("1.10.0", "1.9.0"))
	assert.Equal(t, -1, domain.CompareVersions("1.0.0-beta", "1.0.0"))
	assert.Equal(t, 0, domain.CompareVersions("2.0", "2.0.0"))
	assert.Equal(t, 1, domain.CompareVersions("0.1", "nightly"))
	assert.Equal(t, -1, domain.CompareVersions("nightly", "0.1"))
}

func TestSortVersions(t *testing.T) {
	versions := []string{"1.10.0", "1.2.0", "1.9.0", "1.2.0-rc1"}
	domain.SortVersions(versions)
	assert.Equal(t, []string{"1.2.0-rc1", "1.2.0", "1.9.0", "1.10.0"}, versions)
}

func TestHighestVersion(t *testing.T) {
	assert.Empty(t, domain.HighestVersion(nil))
	assert.Equal(t, "1.10.0", domain.HighestVersion([]string{"1.2.0", "1.10.0", "1.9.0"}))
}

func TestHighestInstalled(t *testing.T) {
	_, ok := domain.HighestInstalled(nil)
	assert.False(t, ok)

	got, ok := domain.HighestInstalled([]domain.InstalledModule{
		{Name: "A", Version: "1.0", Location: "/m/A/1.0"},
		{Name: "A", Version: "2.0", Location: "/m/A/2.0"},
		{Name: "A", Version: "1.5", Location: "/m/A/1.5"},
	})
	assert.True(t, ok)
	assert.Equal(t, "2.0", got.Version)
}

func TestIsPrerelease(t *testing.T) {
	assert.True(t, domain.IsPrerelease("2.0.0-beta1"))
	assert.False(t, domain.IsPrerelease("2.0.0"))
	assert.False(t, domain.IsPrerelease("nightly"))
}

func TestIsVersion(t *testing.T) {
	assert.True(t, domain.IsVersion("1.2.3"))
	assert.True(t, domain.IsVersion("2.0.0-beta1"))
	assert.False(t, domain.IsVersion("en-US"))
}
