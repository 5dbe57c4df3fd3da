package config

// File represents the structure of the modup.yaml configuration file.
type File struct {
	ModulePath        string            `yaml:"modulePath"`
	DefaultRepository string            `yaml:"defaultRepository"`
	Repositories      map[string]string `yaml:"repositories"`
	ProtectedModules  []string          `yaml:"protectedModules"`
	Cache             CacheDTO          `yaml:"cache"`
	HTTP              HTTPDTO           `yaml:"http"`
}

// CacheDTO configures the registry response cache.
type CacheDTO struct {
	Dir string `yaml:"dir"`
	TTL string `yaml:"ttl"`
}

// HTTPDTO configures repository requests.
type HTTPDTO struct {
	Timeout string `yaml:"timeout"`
	Retries *int   `yaml:"retries"`
}
