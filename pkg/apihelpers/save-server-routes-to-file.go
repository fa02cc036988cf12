package apihelpers

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/gin-gonic/gin"
)

// WriteRoutesToFile dumps method and path of every registered route, used in debug mode.
func WriteRoutesToFile(router *gin.Engine, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		slog.Error("could not create routes file", slog.String("file", filename), slog.String("error", err.Error()))
		return
	}
	defer file.Close()
	routes := router.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	for _, route := range routes {
		_, err := file.WriteString(fmt.Sprintf("%s\t%s\n", route.Method, route.Path))
		if err != nil {
			slog.Error("could not write route", slog.String("file", filename), slog.String("error", err.Error()))
			return
		}
	}
}
