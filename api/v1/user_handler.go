package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/guessdle/guessdle/api/middleware"
	"github.com/guessdle/guessdle/internal/stats"
	"github.com/guessdle/guessdle/internal/user"
)

var UserService *user.UserService
var StatsService *stats.StatsService

func RegisterUserRoutes(g *echo.Group, jwtMiddleware echo.MiddlewareFunc) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
	g.GET("/stats", GetUserStatsHandler, jwtMiddleware)
	g.GET("/stats/:gameId", GetDailyStatsHandler, jwtMiddleware)
}

func SignupHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Signup(u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func LoginHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Login(u)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func GetUserStatsHandler(c echo.Context) error {
	userID := api_middleware.UserID(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	userStats, err := StatsService.GetUserStats(userID)
	if err != nil {
		return err
	}
	if userStats == nil {
		return c.JSON(http.StatusOK, echo.Map{"stats": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": userStats})
}

func GetDailyStatsHandler(c echo.Context) error {
	userID := api_middleware.UserID(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	gameID := c.Param("gameId")
	if gameID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "gameId is required")
	}

	dailyStats, err := StatsService.GetDailyStats(userID, gameID)
	if err != nil {
		return err
	}
	if dailyStats == nil {
		return c.JSON(http.StatusOK, echo.Map{"stats": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": dailyStats})
}
