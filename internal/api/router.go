package api

import (
	"net/http"

	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/version"

	"github.com/gin-gonic/gin"
)

// Router assembles the battle-service routes.
func Router(h *BattleHandler) *gin.Engine {
	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteStarters, h.ListStarters)
		apiRoutes.POST(constants.RouteBattleStart, h.StartBattle)
		apiRoutes.POST(constants.RouteBattleTurn, h.SubmitTurn)
		apiRoutes.POST(constants.RouteBattleCapture, h.AttemptCapture)
		apiRoutes.GET(constants.RouteHealth, h.Health)
		apiRoutes.GET(constants.RouteVersion, Version)
	}

	return router
}

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
