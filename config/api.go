package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public API paths (catalog browsing, auth and health need no token)
	return []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/catalog/products",
		"/api/health",
	}
}
