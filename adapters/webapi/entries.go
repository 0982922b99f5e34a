package webapi

import (
	"net/http"
	"net/url"

	"github.com/altlab/munge/service"
	"github.com/labstack/echo/v4"
)

func Entries(group *echo.Group, svc *service.Service) {
	group.GET("/:slug", func(c echo.Context) error {
		slug, err := url.QueryUnescape(c.Param("slug"))
		if err != nil {
			return err
		}

		entry, err := svc.FindEntry(c.Request().Context(), slug)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"entry": entry,
		})
	})
}

func Search(group *echo.Group, svc *service.Service) {
	group.GET("/:head", func(c echo.Context) error {
		head, err := url.QueryUnescape(c.Param("head"))
		if err != nil {
			return err
		}

		entries, err := svc.SearchEntries(c.Request().Context(), head)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"entries": entries,
		})
	})
}

func Stats(group *echo.Group, svc *service.Service) {
	group.GET("", func(c echo.Context) error {
		stats, err := svc.Stats(c.Request().Context())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, stats)
	})
}
