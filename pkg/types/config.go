package types

// BlogConfig holds settings for the markdown-to-article conversion stage.
type BlogConfig struct {
	// DraftsDir is the directory searched for markdown files given by a bare
	// relative name (default "drafts").
	DraftsDir string `json:"drafts_dir" yaml:"drafts_dir"`

	// OutputDir is the directory article HTML files are written to
	// (default "posts").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SitePath is the path to the optional site settings file
	// (default "site.yaml"). A missing file falls back to built-in defaults.
	SitePath string `json:"site_path" yaml:"site_path"`
}

// RegistryConfig holds settings for the book registry stage.
type RegistryConfig struct {
	// BooksFile is the path to the plain-text book log
	// (default "book-reviews/books.txt").
	BooksFile string `json:"books_file" yaml:"books_file"`

	// RegistryPath is the HTML file rewritten in place between marker
	// comments (default "book-registry.html").
	RegistryPath string `json:"registry_path" yaml:"registry_path"`
}

// SiteToolsConfig groups all stage configurations.
type SiteToolsConfig struct {
	Blog     BlogConfig     `json:"blog" yaml:"blog"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}
