package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"nfc-transfer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the OpenAPI document and the Scalar page that renders it
type DocsHandler struct {
	page     []byte
	pageETag string
	specPath string
}

// NewDocsHandler reads scalar.html from dir once. A missing page is served as
// 404 rather than failing startup; the docs are optional in deployments.
func NewDocsHandler(dir string) *DocsHandler {
	page, err := os.ReadFile(filepath.Join(dir, "scalar.html"))
	if err != nil {
		page = nil
	}

	return &DocsHandler{
		page:     page,
		pageETag: generateETag(page),
		specPath: filepath.Join(dir, "openapi.json"),
	}
}

// ServeUI serves the Scalar HTML page
// @Summary API documentation UI
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeUI(c echo.Context) error {
	if len(h.page) == 0 {
		return SendError(c, errors.SystemRouteNotFound)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("ETag", h.pageETag)
	if match := c.Request().Header.Get("If-None-Match"); match == h.pageETag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.page)
}

// ServeSpec serves openapi.json
func (h *DocsHandler) ServeSpec(c echo.Context) error {
	if !fileExists(h.specPath) {
		return SendError(c, errors.SystemRouteNotFound)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	return c.File(h.specPath)
}

func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("\"%x\"", md5.Sum(data))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
