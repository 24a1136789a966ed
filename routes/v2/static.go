package v2

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterStaticRoutes serves the files of dir for every path no route matched
func RegisterStaticRoutes(r *gin.Engine, dir string) {
	fileServer := http.FileServer(http.Dir(dir))

	r.NoRoute(func(c *gin.Context) {
		if dir == "" || strings.HasPrefix(c.Request.URL.Path, Prefix) ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			notFound(c)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if _, err := os.Stat(name); err != nil {
			notFound(c)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Cannot " + c.Request.Method + " " + c.Request.URL.Path})
}
