package utils

import (
	"io"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
)

// CloseLogged closes c and reports the outcome under name.
func CloseLogged(c io.Closer, name string, log logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("close failed", logger.String("resource", name), logger.Error(err))
		return
	}
	log.Debug("closed", logger.String("resource", name))
}
