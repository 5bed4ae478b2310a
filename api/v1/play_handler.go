package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/guessdle/guessdle/api/middleware"
	"github.com/guessdle/guessdle/internal/play"
)

var PlayService *play.PlayService

func RegisterPlayRoutes(g *echo.Group) {
	g.GET("/:id/today", DailyChallengeHandler)
	g.GET("/:id/session", GetSessionHandler)
	g.POST("/:id/guess", SubmitGuessHandler)
}

func DailyChallengeHandler(c echo.Context) error {
	identity := api_middleware.Identity(c)

	view, err := PlayService.DailyChallenge(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func GetSessionHandler(c echo.Context) error {
	identity := api_middleware.Identity(c)

	session, err := PlayService.GetSession(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"session": session})
}

type guessRequest struct {
	Guess string `json:"guess"`
}

func SubmitGuessHandler(c echo.Context) error {
	var r guessRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	identity := api_middleware.Identity(c)
	outcome, err := PlayService.SubmitGuess(c.Request().Context(), identity, c.Param("id"), r.Guess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outcome)
}
