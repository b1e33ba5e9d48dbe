package utils

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves files from dir for paths no route matched. A
// directory resolves to its index.html.
func StaticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			if file, ok := resolveStatic(dir, c.Request.URL.Path); ok {
				c.File(file)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
	}
}

func resolveStatic(dir, urlPath string) (string, bool) {
	if dir == "" {
		return "", false
	}
	full := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
